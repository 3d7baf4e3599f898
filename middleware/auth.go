package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"clinic-portal/guard"
	"clinic-portal/models"
	"clinic-portal/session"
)

// Protected gates a route group behind the session cookie. The cookie is an
// HS256-signed token carrying the session id; the full session is loaded from
// the store and the guard decides allow/redirect. An empty required role only
// demands an authenticated session.
//
// The cookie intentionally carries no expiry claim: a stored role stays valid
// until logout clears it.
func Protected(sessions session.Store, secret, cookieName string, required models.Role) fiber.Handler {
	redirect := func(c *fiber.Ctx, d guard.Decision) error {
		return c.Redirect(d.RedirectTo, fiber.StatusSeeOther)
	}

	return jwtware.New(jwtware.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "cookie:" + cookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Missing or tampered cookie: same path as no session at all.
			return redirect(c, guard.Decide(nil, required))
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return redirect(c, guard.Decide(nil, required))
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return redirect(c, guard.Decide(nil, required))
			}
			sid, _ := claims["sid"].(string)

			sess, err := sessions.Get(c.UserContext(), sid)
			if err != nil {
				log.Printf("session lookup failed for %s: %v", sid, err)
			}

			decision := guard.Decide(sess, required)
			if !decision.Allow {
				return redirect(c, decision)
			}

			c.Locals("sid", sid)
			c.Locals("session", sess)
			c.Locals("role", string(sess.Role))
			return c.Next()
		},
	})
}

// SessionToken signs the cookie payload for a freshly committed session.
func SessionToken(sid string, role models.Role, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sid":  sid,
		"role": string(role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// SessionFromCtx returns the session placed in locals by Protected.
func SessionFromCtx(c *fiber.Ctx) *models.Session {
	sess, _ := c.Locals("session").(*models.Session)
	return sess
}

// SIDFromCtx returns the session id placed in locals by Protected.
func SIDFromCtx(c *fiber.Ctx) string {
	sid, _ := c.Locals("sid").(string)
	return sid
}
