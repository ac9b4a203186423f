package scheduling

import (
	"context"

	"github.com/google/uuid"
)

// AppointmentRepository fetches appointments with single-field equality
// filters only. Ordering and pagination happen in memory in the service so
// the store needs no composite indexes.
type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error)
	ListByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date string) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *DoctorNotification) error
	GetByID(ctx context.Context, id uuid.UUID) (*DoctorNotification, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*DoctorNotification, int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}
