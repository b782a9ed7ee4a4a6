package reporting

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/intake/intake/internal/domain/intake"
)

// SessionSource resolves session ids; the intake service satisfies it.
type SessionSource interface {
	GetSession(ctx context.Context, id uuid.UUID) (*intake.Session, error)
}

type Handler struct {
	sessions SessionSource
}

func NewHandler(sessions SessionSource) *Handler {
	return &Handler{sessions: sessions}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/sessions/:id/report", h.GetReport)
}

// GetReport returns the full recommendation report for a session. A report
// may be requested at any point in the conversation; unanswered questions
// simply don't contribute.
func (h *Handler) GetReport(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sess, err := h.sessions.GetSession(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, intake.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, Build(sess))
}
