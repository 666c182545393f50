package pharmacy

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/pharmacies", h.ListPharmacies)
	api.GET("/pharmacies/:name", h.GetPharmacy)
	api.GET("/pharmacies/:name/medicines", h.ListInventory)
	api.POST("/pharmacies/:name/medicines", h.AddMedicine)
	api.PUT("/pharmacies/:name/medicines/:medicine", h.UpdateMedicine)
	api.DELETE("/pharmacies/:name/medicines/:medicine", h.RemoveMedicine)
}

func (h *Handler) ListPharmacies(c echo.Context) error {
	pharmacies, err := h.svc.ListPharmacies(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pharmacies)
}

func (h *Handler) GetPharmacy(c echo.Context) error {
	p, err := h.svc.GetPharmacy(c.Request().Context(), c.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "pharmacy not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListInventory(c echo.Context) error {
	meds, err := h.svc.ListInventory(c.Request().Context(), c.Param("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "pharmacy not found")
	}
	return c.JSON(http.StatusOK, meds)
}

func (h *Handler) AddMedicine(c echo.Context) error {
	var m Medicine
	if err := c.Bind(&m); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m.PharmacyName = c.Param("name")
	if err := h.svc.AddMedicine(c.Request().Context(), &m); err != nil {
		switch {
		case errors.Is(err, ErrPharmacyNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "pharmacy not found")
		case errors.Is(err, ErrDuplicateMedicine):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) UpdateMedicine(c echo.Context) error {
	var patch MedicinePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	err := h.svc.UpdateMedicine(c.Request().Context(), c.Param("name"), c.Param("medicine"), patch)
	if err != nil {
		switch {
		case errors.Is(err, ErrPharmacyNotFound), errors.Is(err, ErrMedicineNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	m, err := h.svc.GetMedicine(c.Request().Context(), c.Param("name"), c.Param("medicine"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) RemoveMedicine(c echo.Context) error {
	err := h.svc.RemoveMedicine(c.Request().Context(), c.Param("name"), c.Param("medicine"))
	if err != nil {
		if errors.Is(err, ErrPharmacyNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "pharmacy not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
