package dosha

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Service struct {
	assessments AssessmentRepository
	logger      zerolog.Logger
}

func NewService(assessments AssessmentRepository, logger zerolog.Logger) *Service {
	return &Service{assessments: assessments, logger: logger}
}

// Assess classifies the answers and persists the assessment for the patient.
// The classification itself cannot fail; a storage failure is reported but
// the caller still receives the result.
func (s *Service) Assess(ctx context.Context, patientID uuid.UUID, answers Answers) (*Assessment, Result, error) {
	result := Classify(answers)

	if patientID == uuid.Nil {
		return nil, result, fmt.Errorf("patient_id is required")
	}

	a := &Assessment{
		PatientID:  patientID,
		Answers:    answers,
		Dosha:      result.Dosha,
		VataScore:  result.Scores.Vata,
		PittaScore: result.Scores.Pitta,
		KaphaScore: result.Scores.Kapha,
	}
	if err := s.assessments.Create(ctx, a); err != nil {
		return nil, result, fmt.Errorf("store assessment: %w", err)
	}

	s.logger.Info().
		Str("assessment_id", a.ID.String()).
		Str("patient_id", patientID.String()).
		Str("dosha", string(result.Dosha)).
		Msg("dosha assessment recorded")

	return a, result, nil
}

func (s *Service) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	return s.assessments.GetByID(ctx, id)
}

func (s *Service) ListAssessmentsByPatient(ctx context.Context, patientID uuid.UUID, limit, offset int) ([]*Assessment, int, error) {
	if patientID == uuid.Nil {
		return nil, 0, fmt.Errorf("patient_id is required")
	}
	return s.assessments.ListByPatient(ctx, patientID, limit, offset)
}
