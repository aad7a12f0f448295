package worklist

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sadtavut2011/Thai-Cleft-Application-sub009/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	role := auth.RequireRole("admin", "physician", "nurse")

	g := api.Group("", role)
	g.GET("/worklist", h.DailyTasks)
	g.GET("/worklist/pending-intake", h.PendingIntake)
}

// DailyTasks serves the merged personal schedule for a caller-supplied
// date (?date=YYYY-MM-DD) with an optional ?type= filter.
func (h *Handler) DailyTasks(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}
	tasks, err := h.svc.DailyTasks(c.Request().Context(), date, c.QueryParam("type"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) PendingIntake(c echo.Context) error {
	referrals, err := h.svc.PendingIntake(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, referrals)
}
