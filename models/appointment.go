package models

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
	StatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	ID        string            `json:"_id"`
	DoctorID  string            `json:"doctorId"`
	PatientID string            `json:"patientId"`
	Date      string            `json:"date"`
	Slot      int               `json:"slot"`
	Status    AppointmentStatus `json:"status"`
	CreatedAt string            `json:"createdAt,omitempty"`
}

// slotTimes is the fixed daily slot enumeration owned by the booking views.
// Eight hourly windows from 9:00 to 17:00 with a midday gap at 1 PM.
var slotTimes = [...]string{
	"9:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"2:00 PM",
	"3:00 PM",
	"4:00 PM",
	"5:00 PM",
}

const SlotCount = len(slotTimes)

type SlotOption struct {
	Value int    `json:"value"`
	Time  string `json:"time"`
}

// SlotTime maps a slot index to its display time, or "" when out of range.
func SlotTime(slot int) string {
	if slot < 0 || slot >= SlotCount {
		return ""
	}
	return slotTimes[slot]
}

// Slots returns the full slot table for rendering booking forms.
func Slots() []SlotOption {
	out := make([]SlotOption, 0, SlotCount)
	for i, t := range slotTimes {
		out = append(out, SlotOption{Value: i, Time: t})
	}
	return out
}
