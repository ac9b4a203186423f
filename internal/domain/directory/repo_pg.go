package directory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository {
	return &doctorRepoPG{pool: pool}
}

const doctorCols = `id, name, specialization, location, email, phone, bio,
	experience_years, languages, rating, review_count, consultation_fee,
	created_at, updated_at`

func (r *doctorRepoPG) scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialization, &d.Location, &d.Email, &d.Phone, &d.Bio,
		&d.ExperienceYears, &d.Languages, &d.Rating, &d.ReviewCount, &d.ConsultationFee,
		&d.CreatedAt, &d.UpdatedAt)
	return &d, err
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	d.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO doctors (id, name, specialization, location, email, phone, bio,
			experience_years, languages, rating, review_count, consultation_fee)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		d.ID, d.Name, d.Specialization, d.Location, d.Email, d.Phone, d.Bio,
		d.ExperienceYears, d.Languages, d.Rating, d.ReviewCount, d.ConsultationFee)
	return err
}

func (r *doctorRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return r.scanDoctor(r.pool.QueryRow(ctx,
		`SELECT `+doctorCols+` FROM doctors WHERE id = $1`, id))
}

func (r *doctorRepoPG) Update(ctx context.Context, d *Doctor) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE doctors SET name=$2, specialization=$3, location=$4, email=$5, phone=$6,
			bio=$7, experience_years=$8, languages=$9, consultation_fee=$10, updated_at=NOW()
		WHERE id = $1`,
		d.ID, d.Name, d.Specialization, d.Location, d.Email, d.Phone,
		d.Bio, d.ExperienceYears, d.Languages, d.ConsultationFee)
	return err
}

func (r *doctorRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	return err
}

func (r *doctorRepoPG) List(ctx context.Context, specialization string, limit, offset int) ([]*Doctor, int, error) {
	where := ""
	countArgs := []interface{}{}
	dataArgs := []interface{}{limit, offset}
	if specialization != "" {
		where = ` WHERE specialization = $1`
		countArgs = append(countArgs, specialization)
		dataArgs = []interface{}{specialization, limit, offset}
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + doctorCols + ` FROM doctors` + where + ` ORDER BY rating DESC, name ASC LIMIT $1 OFFSET $2`
	if specialization != "" {
		query = `SELECT ` + doctorCols + ` FROM doctors` + where + ` ORDER BY rating DESC, name ASC LIMIT $2 OFFSET $3`
	}
	rows, err := r.pool.Query(ctx, query, dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Doctor
	for rows.Next() {
		d, err := r.scanDoctor(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, d)
	}
	return items, total, rows.Err()
}
