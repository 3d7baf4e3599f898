package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"clinic-portal/config"
	"clinic-portal/controllers"
	"clinic-portal/controllers/admin"
	"clinic-portal/controllers/doctor"
	"clinic-portal/controllers/patient"
	"clinic-portal/gateway"
	"clinic-portal/routes"
	"clinic-portal/session"
	"clinic-portal/telemetry"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	shutdown := telemetry.Setup("clinic-portal")
	defer shutdown(context.Background())

	sessions, err := session.NewRedis(cfg.RedisAddr, cfg.FlashTTL)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	client := gateway.NewClient(cfg.BackendURL)
	booking := gateway.NewBooking(client)
	departments := gateway.NewDepartments(client)

	deps := routes.Deps{
		Auth: &controllers.Auth{
			Gateway:    gateway.NewAuth(client),
			Sessions:   sessions,
			Secret:     cfg.CookieSecret,
			CookieName: cfg.CookieName,
		},
		Patient: &patient.Dashboard{
			Booking:     booking,
			Departments: departments,
			Sessions:    sessions,
		},
		Doctor: &doctor.Dashboard{
			Booking: booking,
		},
		Admin: &admin.Dashboard{
			Departments: departments,
			Doctors:     gateway.NewDoctors(client),
			Sessions:    sessions,
		},
		Sessions: sessions,
		Config:   cfg,
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
	}))

	routes.SetupAuthRoutes(app, deps)
	routes.SetupPatientRoutes(app, deps)
	routes.SetupDoctorRoutes(app, deps)
	routes.SetupAdminRoutes(app, deps)

	log.Printf("clinic portal listening on :%s (backend %s)", cfg.Port, cfg.BackendURL)
	log.Fatal(app.Listen(":" + cfg.Port))
}
