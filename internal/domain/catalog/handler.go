package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/catalog/countries", h.ListCountries)
	api.GET("/catalog/ethnicities", h.ListEthnicities)
	api.GET("/catalog/cancer-types", h.ListCancerTypes)
	api.GET("/catalog/chronic-conditions", h.ListChronicConditions)
	api.GET("/catalog/medications", h.ListMedications)
}

func (h *Handler) ListCountries(c echo.Context) error {
	return c.JSON(http.StatusOK, Countries)
}

func (h *Handler) ListEthnicities(c echo.Context) error {
	return c.JSON(http.StatusOK, Ethnicities)
}

func (h *Handler) ListCancerTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, CancerTypes)
}

func (h *Handler) ListChronicConditions(c echo.Context) error {
	return c.JSON(http.StatusOK, ChronicConditions)
}

func (h *Handler) ListMedications(c echo.Context) error {
	return c.JSON(http.StatusOK, Medications)
}
