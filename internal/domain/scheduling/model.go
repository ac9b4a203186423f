package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. New appointments always start pending.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

var validAppointmentStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCancelled: true,
	StatusCompleted: true,
}

// statusTransitions is the allowed lifecycle: pending can be confirmed or
// cancelled, confirmed can be completed or cancelled. Cancelled and completed
// are terminal.
var statusTransitions = map[string]map[string]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
	StatusCancelled: {},
	StatusCompleted: {},
}

// Appointment maps to the appointments table. Doctor and patient contact
// details are denormalized onto the row so that notification and email
// dispatch never need a second lookup.
type Appointment struct {
	ID           uuid.UUID `db:"id" json:"id"`
	DoctorID     uuid.UUID `db:"doctor_id" json:"doctor_id"`
	DoctorName   string    `db:"doctor_name" json:"doctor_name"`
	DoctorEmail  string    `db:"doctor_email" json:"doctor_email"`
	PatientID    uuid.UUID `db:"patient_id" json:"patient_id"`
	PatientName  string    `db:"patient_name" json:"patient_name"`
	PatientEmail string    `db:"patient_email" json:"patient_email"`
	PatientPhone string    `db:"patient_phone" json:"patient_phone"`
	Date         string    `db:"date" json:"date"` // DD/MM/YYYY
	Time         string    `db:"time" json:"time"` // hh:mm AM/PM
	Notes        string    `db:"notes" json:"notes"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Doctor notification types.
const (
	NotifyNewAppointment       = "new_appointment"
	NotifyAppointmentCancelled = "appointment_cancelled"
	NotifyAppointmentConfirmed = "appointment_confirmed"
)

// Doctor notification read states.
const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

// DoctorNotification maps to the doctor_notifications table. One row per
// booking or status-change event, consumed by the doctor dashboard.
type DoctorNotification struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	DoctorID      uuid.UUID  `db:"doctor_id" json:"doctor_id"`
	DoctorEmail   string     `db:"doctor_email" json:"doctor_email"`
	AppointmentID uuid.UUID  `db:"appointment_id" json:"appointment_id"`
	PatientName   string     `db:"patient_name" json:"patient_name"`
	PatientEmail  string     `db:"patient_email" json:"patient_email"`
	PatientPhone  string     `db:"patient_phone" json:"patient_phone"`
	Date          string     `db:"date" json:"date"`
	Time          string     `db:"time" json:"time"`
	Notes         string     `db:"notes" json:"notes"`
	Type          string     `db:"type" json:"type"`
	Status        string     `db:"status" json:"status"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	ReadAt        *time.Time `db:"read_at" json:"read_at,omitempty"`
}
