package scheduling

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ayurcare/ayurcare/internal/platform/email"
)

// Sentinel errors surfaced to the transport layer.
var (
	// ErrAvailabilityCheck means the conflict check could not read the
	// store. Callers must treat the slot as unavailable, never as free.
	ErrAvailabilityCheck = errors.New("availability check failed")
	// ErrSlotTaken means the requested slot conflicts with an existing
	// appointment or lost the booking race at the unique index.
	ErrSlotTaken = errors.New("slot already taken")
	// ErrInvalidTransition means the requested status change is not allowed
	// by the appointment lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// conflictWindowMinutes is the exclusive half-width of the booking window:
// two appointments conflict when their start times are strictly closer than
// this many minutes.
const conflictWindowMinutes = 30

type Service struct {
	appointments  AppointmentRepository
	notifications NotificationRepository
	mailer        *email.Mailer
	logger        zerolog.Logger
}

func NewService(appts AppointmentRepository, notifs NotificationRepository, mailer *email.Mailer, logger zerolog.Logger) *Service {
	return &Service{appointments: appts, notifications: notifs, mailer: mailer, logger: logger}
}

// HasConflict reports whether the doctor already has a non-cancelled
// appointment within 30 minutes of the requested time on the given date.
// excludeID skips one appointment (the one being rescheduled); pass
// uuid.Nil for new bookings. A store failure yields ErrAvailabilityCheck —
// the slot is never reported free on error.
func (s *Service) HasConflict(ctx context.Context, doctorID uuid.UUID, date, timeStr string, excludeID uuid.UUID) (bool, error) {
	requested, err := ClockMinutes(timeStr)
	if err != nil {
		return false, fmt.Errorf("parse requested time: %w", err)
	}

	existing, err := s.appointments.ListByDoctorAndDate(ctx, doctorID, date)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrAvailabilityCheck, err)
	}

	for _, a := range existing {
		if a.Status == StatusCancelled {
			continue
		}
		if excludeID != uuid.Nil && a.ID == excludeID {
			continue
		}
		mins, err := ClockMinutes(a.Time)
		if err != nil {
			// A stored row with an unparseable time cannot be compared;
			// it never blocks a slot.
			continue
		}
		diff := requested - mins
		if diff < 0 {
			diff = -diff
		}
		if diff < conflictWindowMinutes {
			return true, nil
		}
	}
	return false, nil
}

// Book validates and creates a pending appointment, then fires the doctor
// notification and booking emails best-effort. The unique index on
// (doctor_id, date, time) backs up the conflict pre-check, so a lost race
// still surfaces as ErrSlotTaken.
func (s *Service) Book(ctx context.Context, a *Appointment) error {
	if err := validateAppointment(a); err != nil {
		return err
	}

	conflict, err := s.HasConflict(ctx, a.DoctorID, a.Date, a.Time, uuid.Nil)
	if err != nil {
		return err
	}
	if conflict {
		return ErrSlotTaken
	}

	a.Status = StatusPending
	if err := s.appointments.Create(ctx, a); err != nil {
		return err
	}

	s.notifyDoctor(ctx, a, NotifyNewAppointment)
	s.sendBookingEmails(ctx, a)

	return nil
}

// Reschedule moves an existing appointment to a new date and time, keeping
// its status. The conflict check excludes the appointment itself so a
// same-slot reschedule (notes-only edit) passes.
func (s *Service) Reschedule(ctx context.Context, id uuid.UUID, date, timeStr, notes, phone string) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}
	if a.Status == StatusCancelled || a.Status == StatusCompleted {
		return nil, fmt.Errorf("%w: cannot reschedule a %s appointment", ErrInvalidTransition, a.Status)
	}

	if _, _, _, err := DateParts(date); err != nil {
		return nil, err
	}
	if _, err := ClockMinutes(timeStr); err != nil {
		return nil, err
	}

	conflict, err := s.HasConflict(ctx, a.DoctorID, date, timeStr, a.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	a.Date = date
	a.Time = timeStr
	a.Notes = notes
	if phone != "" {
		a.PatientPhone = phone
	}
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// UpdateStatus moves an appointment through its lifecycle and fires the
// matching doctor notification best-effort.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) (*Appointment, error) {
	if !validAppointmentStatuses[newStatus] {
		return nil, fmt.Errorf("invalid appointment status: %s", newStatus)
	}

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("appointment not found: %w", err)
	}

	if !statusTransitions[a.Status][newStatus] {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, newStatus)
	}

	if err := s.appointments.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}
	a.Status = newStatus

	s.notifyDoctor(ctx, a, notificationTypeFor(newStatus))
	if newStatus == StatusCancelled {
		s.sendCancellationEmail(ctx, a)
	}

	return a, nil
}

// notificationTypeFor maps a status change to its doctor notification type.
// Every non-cancel change reports as appointment_confirmed, including
// completion; the mobile clients have only ever distinguished these two.
func notificationTypeFor(status string) string {
	if status == StatusCancelled {
		return NotifyAppointmentCancelled
	}
	return NotifyAppointmentConfirmed
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// ListByDoctor returns the doctor's appointments sorted date-descending then
// time-ascending, optionally filtered to one status.
func (s *Service) ListByDoctor(ctx context.Context, doctorID uuid.UUID, status string) ([]*Appointment, error) {
	appts, err := s.appointments.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	appts = filterByStatus(appts, status)
	SortAppointments(appts)
	return appts, nil
}

// ListByPatient returns the patient's appointments in the same order.
func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID, status string) ([]*Appointment, error) {
	appts, err := s.appointments.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	appts = filterByStatus(appts, status)
	SortAppointments(appts)
	return appts, nil
}

func (s *Service) ListNotifications(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*DoctorNotification, int, error) {
	if doctorID == uuid.Nil {
		return nil, 0, fmt.Errorf("doctor_id is required")
	}
	return s.notifications.ListByDoctor(ctx, doctorID, limit, offset)
}

func (s *Service) MarkNotificationRead(ctx context.Context, id uuid.UUID) (*DoctorNotification, error) {
	if err := s.notifications.MarkRead(ctx, id); err != nil {
		return nil, err
	}
	return s.notifications.GetByID(ctx, id)
}

// -- internal helpers --

func validateAppointment(a *Appointment) error {
	if a.DoctorID == uuid.Nil {
		return fmt.Errorf("doctor_id is required")
	}
	if a.PatientID == uuid.Nil {
		return fmt.Errorf("patient_id is required")
	}
	if a.PatientName == "" {
		return fmt.Errorf("patient_name is required")
	}
	if a.PatientEmail == "" {
		return fmt.Errorf("patient_email is required")
	}
	if a.Date == "" {
		return fmt.Errorf("date is required")
	}
	if a.Time == "" {
		return fmt.Errorf("time is required")
	}
	if _, _, _, err := DateParts(a.Date); err != nil {
		return err
	}
	if _, err := ClockMinutes(a.Time); err != nil {
		return err
	}
	return nil
}

func filterByStatus(appts []*Appointment, status string) []*Appointment {
	if status == "" {
		return appts
	}
	filtered := appts[:0]
	for _, a := range appts {
		if a.Status == status {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// notifyDoctor records a dashboard notification. Failures are logged and
// swallowed; the appointment operation has already succeeded.
func (s *Service) notifyDoctor(ctx context.Context, a *Appointment, notifType string) {
	n := &DoctorNotification{
		DoctorID:      a.DoctorID,
		DoctorEmail:   a.DoctorEmail,
		AppointmentID: a.ID,
		PatientName:   a.PatientName,
		PatientEmail:  a.PatientEmail,
		PatientPhone:  a.PatientPhone,
		Date:          a.Date,
		Time:          a.Time,
		Notes:         a.Notes,
		Type:          notifType,
		Status:        NotificationUnread,
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		s.logger.Error().Err(err).
			Str("appointment_id", a.ID.String()).
			Str("type", notifType).
			Msg("failed to record doctor notification")
	}
}

func (s *Service) sendBookingEmails(ctx context.Context, a *Appointment) {
	notes := a.Notes
	if notes == "" {
		notes = "No additional notes"
	}

	if err := s.mailer.SendFromTemplate(ctx, email.TemplateDoctorBookingAlert, map[string]string{
		"doctor_name":   a.DoctorName,
		"patient_name":  a.PatientName,
		"patient_email": a.PatientEmail,
		"patient_phone": a.PatientPhone,
		"date":          a.Date,
		"time":          a.Time,
		"notes":         notes,
	}, a.DoctorEmail); err != nil {
		s.logger.Error().Err(err).Str("appointment_id", a.ID.String()).Msg("failed to send doctor booking alert")
	}

	if err := s.mailer.SendFromTemplate(ctx, email.TemplatePatientConfirmation, map[string]string{
		"patient_name": a.PatientName,
		"doctor_name":  a.DoctorName,
		"date":         a.Date,
		"time":         a.Time,
	}, a.PatientEmail); err != nil {
		s.logger.Error().Err(err).Str("appointment_id", a.ID.String()).Msg("failed to send patient confirmation")
	}
}

func (s *Service) sendCancellationEmail(ctx context.Context, a *Appointment) {
	if err := s.mailer.SendFromTemplate(ctx, email.TemplateCancellationNotice, map[string]string{
		"recipient_name": a.PatientName,
		"date":           a.Date,
		"time":           a.Time,
	}, a.PatientEmail); err != nil {
		s.logger.Error().Err(err).Str("appointment_id", a.ID.String()).Msg("failed to send cancellation notice")
	}
}
