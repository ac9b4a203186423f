package scheduling

import (
	"errors"
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
	g := api.Group("", auth.RequireRole("patient", "doctor"))
	g.POST("/appointments", h.book)
	g.GET("/appointments", h.list)
	g.GET("/appointments/:id", h.get)
	g.PUT("/appointments/:id", h.reschedule)
	g.PATCH("/appointments/:id/status", h.updateStatus)
	g.GET("/availability", h.availability)

	d := api.Group("", auth.RequireRole("doctor"))
	d.GET("/notifications", h.listNotifications)
	d.POST("/notifications/:id/read", h.markNotificationRead)
}

type bookRequest struct {
	DoctorID     uuid.UUID `json:"doctor_id"`
	DoctorName   string    `json:"doctor_name"`
	DoctorEmail  string    `json:"doctor_email"`
	PatientID    uuid.UUID `json:"patient_id"`
	PatientName  string    `json:"patient_name"`
	PatientEmail string    `json:"patient_email"`
	PatientPhone string    `json:"patient_phone"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Notes        string    `json:"notes"`
}

func (h *Handler) book(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a := &Appointment{
		DoctorID:     req.DoctorID,
		DoctorName:   req.DoctorName,
		DoctorEmail:  req.DoctorEmail,
		PatientID:    req.PatientID,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		PatientPhone: req.PatientPhone,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
	}
	if err := h.svc.Book(c.Request().Context(), a); err != nil {
		return mapSchedulingError(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) list(c echo.Context) error {
	status := c.QueryParam("status")

	if v := c.QueryParam("doctor_id"); v != "" {
		doctorID, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
		}
		appts, err := h.svc.ListByDoctor(c.Request().Context(), doctorID, status)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list appointments")
		}
		return c.JSON(http.StatusOK, appts)
	}

	if v := c.QueryParam("patient_id"); v != "" {
		patientID, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid patient_id")
		}
		appts, err := h.svc.ListByPatient(c.Request().Context(), patientID, status)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "failed to list appointments")
		}
		return c.JSON(http.StatusOK, appts)
	}

	return echo.NewHTTPError(http.StatusBadRequest, "doctor_id or patient_id is required")
}

func (h *Handler) get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return c.JSON(http.StatusOK, a)
}

type rescheduleRequest struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Notes        string `json:"notes"`
	PatientPhone string `json:"patient_phone"`
}

func (h *Handler) reschedule(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	var req rescheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a, err := h.svc.Reschedule(c.Request().Context(), id, req.Date, req.Time, req.Notes, req.PatientPhone)
	if err != nil {
		return mapSchedulingError(err)
	}
	return c.JSON(http.StatusOK, a)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid appointment id")
	}
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	a, err := h.svc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return mapSchedulingError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) availability(c echo.Context) error {
	doctorID, err := uuid.Parse(c.QueryParam("doctor_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
	}
	date := c.QueryParam("date")
	timeStr := c.QueryParam("time")
	if date == "" || timeStr == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date and time are required")
	}
	if _, _, _, err := DateParts(date); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conflict, err := h.svc.HasConflict(c.Request().Context(), doctorID, date, timeStr, uuid.Nil)
	if err != nil {
		return mapSchedulingError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"doctor_id": doctorID,
		"date":      date,
		"time":      timeStr,
		"available": !conflict,
	})
}

func (h *Handler) listNotifications(c echo.Context) error {
	doctorID, err := uuid.Parse(c.QueryParam("doctor_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
	}
	p := pagination.FromContext(c)
	items, total, err := h.svc.ListNotifications(c.Request().Context(), doctorID, p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to list notifications")
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}

func (h *Handler) markNotificationRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}
	n, err := h.svc.MarkNotificationRead(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "notification not found")
	}
	return c.JSON(http.StatusOK, n)
}

// mapSchedulingError translates service sentinels into HTTP errors.
func mapSchedulingError(err error) error {
	switch {
	case errors.Is(err, ErrSlotTaken):
		return echo.NewHTTPError(http.StatusConflict, "the requested slot is already taken")
	case errors.Is(err, ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrAvailabilityCheck):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "availability could not be verified, try again")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}
