package screening

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/intake/intake/internal/domain/intake"
)

// RecordSource resolves a session id to its response record. The intake
// service satisfies this; the indirection keeps screening free of session
// mechanics.
type RecordSource interface {
	GetSession(ctx context.Context, id uuid.UUID) (*intake.Session, error)
}

type Handler struct {
	records RecordSource
}

func NewHandler(records RecordSource) *Handler {
	return &Handler{records: records}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/recommendations", h.RecommendAdHoc)
	api.GET("/sessions/:id/recommendations", h.RecommendForSession)
}

// RecommendAdHoc evaluates a record supplied in the request body, e.g. for a
// mid-conversation preview driven by the client.
func (h *Handler) RecommendAdHoc(c echo.Context) error {
	var record intake.ResponseRecord
	if err := c.Bind(&record); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, Recommend(&record))
}

// RecommendForSession evaluates the current state of a session's record. The
// record does not need to be complete; rules treat unanswered questions as
// non-triggering.
func (h *Handler) RecommendForSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	sess, err := h.records.GetSession(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, intake.ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "session not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, Recommend(sess.Record))
}
