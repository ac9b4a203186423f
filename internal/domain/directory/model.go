package directory

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a practitioner listing in the public directory. Rating and
// ReviewCount are maintained by the review import job, not by this API.
type Doctor struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Specialization  string    `db:"specialization" json:"specialization"`
	Location        string    `db:"location" json:"location"`
	Email           string    `db:"email" json:"email"`
	Phone           string    `db:"phone" json:"phone"`
	Bio             string    `db:"bio" json:"bio"`
	ExperienceYears int       `db:"experience_years" json:"experience_years"`
	Languages       []string  `db:"languages" json:"languages"`
	Rating          float64   `db:"rating" json:"rating"`
	ReviewCount     int       `db:"review_count" json:"review_count"`
	ConsultationFee float64   `db:"consultation_fee" json:"consultation_fee"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
