package dosha

import (
	"time"

	"github.com/google/uuid"
)

// Assessment maps to the dosha_assessments table. One row per completed
// questionnaire.
type Assessment struct {
	ID         uuid.UUID `db:"id" json:"id"`
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	Answers    Answers   `db:"answers" json:"answers"`
	Dosha      Dosha     `db:"dosha" json:"dosha"`
	VataScore  int       `db:"vata_score" json:"vata_score"`
	PittaScore int       `db:"pitta_score" json:"pitta_score"`
	KaphaScore int       `db:"kapha_score" json:"kapha_score"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
