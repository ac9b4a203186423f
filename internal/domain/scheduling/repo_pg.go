package scheduling

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Appointment Repository ===========

type appointmentRepoPG struct{ pool *pgxpool.Pool }

func NewAppointmentRepoPG(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{pool: pool}
}

const apptCols = `id, doctor_id, doctor_name, doctor_email, patient_id, patient_name,
	patient_email, patient_phone, date, "time", notes, status, created_at, updated_at`

func (r *appointmentRepoPG) scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.ID, &a.DoctorID, &a.DoctorName, &a.DoctorEmail, &a.PatientID, &a.PatientName,
		&a.PatientEmail, &a.PatientPhone, &a.Date, &a.Time, &a.Notes, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return &a, err
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments (id, doctor_id, doctor_name, doctor_email, patient_id, patient_name,
			patient_email, patient_phone, date, "time", notes, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		a.ID, a.DoctorID, a.DoctorName, a.DoctorEmail, a.PatientID, a.PatientName,
		a.PatientEmail, a.PatientPhone, a.Date, a.Time, a.Notes, a.Status)
	// The partial unique index on (doctor_id, date, time) for non-cancelled
	// rows closes the check-then-book race.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrSlotTaken
	}
	return err
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return r.scanAppointment(r.pool.QueryRow(ctx,
		`SELECT `+apptCols+` FROM appointments WHERE id = $1`, id))
}

func (r *appointmentRepoPG) Update(ctx context.Context, a *Appointment) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE appointments SET date=$2, "time"=$3, notes=$4, patient_phone=$5, updated_at=NOW()
		WHERE id = $1`,
		a.ID, a.Date, a.Time, a.Notes, a.PatientPhone)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrSlotTaken
	}
	return err
}

func (r *appointmentRepoPG) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE appointments SET status=$2, updated_at=NOW() WHERE id = $1`, id, status)
	return err
}

func (r *appointmentRepoPG) list(ctx context.Context, query string, args ...interface{}) ([]*Appointment, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []*Appointment
	for rows.Next() {
		a, err := r.scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *appointmentRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+apptCols+` FROM appointments WHERE doctor_id = $1`, doctorID)
}

func (r *appointmentRepoPG) ListByDoctorAndDate(ctx context.Context, doctorID uuid.UUID, date string) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+apptCols+` FROM appointments WHERE doctor_id = $1 AND date = $2`, doctorID, date)
}

func (r *appointmentRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	return r.list(ctx, `SELECT `+apptCols+` FROM appointments WHERE patient_id = $1`, patientID)
}

// =========== Notification Repository ===========

type notificationRepoPG struct{ pool *pgxpool.Pool }

func NewNotificationRepoPG(pool *pgxpool.Pool) NotificationRepository {
	return &notificationRepoPG{pool: pool}
}

const notifCols = `id, doctor_id, doctor_email, appointment_id, patient_name, patient_email,
	patient_phone, date, "time", notes, type, status, created_at, read_at`

func (r *notificationRepoPG) scanNotification(row pgx.Row) (*DoctorNotification, error) {
	var n DoctorNotification
	err := row.Scan(&n.ID, &n.DoctorID, &n.DoctorEmail, &n.AppointmentID, &n.PatientName, &n.PatientEmail,
		&n.PatientPhone, &n.Date, &n.Time, &n.Notes, &n.Type, &n.Status, &n.CreatedAt, &n.ReadAt)
	return &n, err
}

func (r *notificationRepoPG) Create(ctx context.Context, n *DoctorNotification) error {
	n.ID = uuid.New()
	if n.Status == "" {
		n.Status = NotificationUnread
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO doctor_notifications (id, doctor_id, doctor_email, appointment_id, patient_name,
			patient_email, patient_phone, date, "time", notes, type, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		n.ID, n.DoctorID, n.DoctorEmail, n.AppointmentID, n.PatientName,
		n.PatientEmail, n.PatientPhone, n.Date, n.Time, n.Notes, n.Type, n.Status)
	return err
}

func (r *notificationRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*DoctorNotification, error) {
	return r.scanNotification(r.pool.QueryRow(ctx,
		`SELECT `+notifCols+` FROM doctor_notifications WHERE id = $1`, id))
}

func (r *notificationRepoPG) ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]*DoctorNotification, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM doctor_notifications WHERE doctor_id = $1`, doctorID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+notifCols+` FROM doctor_notifications WHERE doctor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		doctorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*DoctorNotification
	for rows.Next() {
		n, err := r.scanNotification(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, n)
	}
	return items, total, rows.Err()
}

func (r *notificationRepoPG) MarkRead(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE doctor_notifications SET status=$2, read_at=NOW() WHERE id = $1`, id, NotificationRead)
	return err
}
