package dosha

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ayurcare/ayurcare/internal/platform/auth"
	"github.com/ayurcare/ayurcare/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dosha/questions", h.GetQuestions)

	guarded := api.Group("", auth.RequireRole("patient", "doctor"))
	guarded.POST("/dosha/assessments", h.CreateAssessment)
	guarded.GET("/dosha/assessments", h.ListAssessments)
	guarded.GET("/dosha/assessments/:id", h.GetAssessment)
}

// GetQuestions serves the symptom questionnaire.
func (h *Handler) GetQuestions(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"questions": Questions(),
	})
}

type assessRequest struct {
	PatientID uuid.UUID `json:"patient_id"`
	Answers   Answers   `json:"answers"`
}

type assessResponse struct {
	Assessment *Assessment `json:"assessment"`
	Result     Result      `json:"result"`
}

// CreateAssessment classifies the submitted answers and stores the outcome.
func (h *Handler) CreateAssessment(c echo.Context) error {
	var req assessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	a, result, err := h.svc.Assess(c.Request().Context(), req.PatientID, req.Answers)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, assessResponse{Assessment: a, Result: result})
}

func (h *Handler) GetAssessment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.GetAssessment(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) ListAssessments(c echo.Context) error {
	patientID, err := uuid.Parse(c.QueryParam("patient_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListAssessmentsByPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
