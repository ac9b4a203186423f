package content

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the editorial content endpoints. All reads are open.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/remedies", h.listRemedies)
	api.GET("/remedies/:id", h.getRemedy)
	api.GET("/health-info", h.healthInfo)
}

func (h *Handler) listRemedies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Remedies(c.QueryParam("q")))
}

func (h *Handler) getRemedy(c echo.Context) error {
	r, ok := h.svc.Remedy(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "remedy not found")
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) healthInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.HealthTopics())
}
