package ledger

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emsupply/emsupply/internal/domain/pharmacy"
	"github.com/emsupply/emsupply/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/purchases", h.CreatePurchase)
	api.GET("/purchases", h.ListPurchases)
}

type purchaseRequest struct {
	CustomerName string `json:"customer_name"`
	PharmacyName string `json:"pharmacy_name"`
	MedicineName string `json:"medicine_name"`
	Quantity     int    `json:"quantity"`
}

func (h *Handler) CreatePurchase(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.svc.Purchase(c.Request().Context(), req.CustomerName, req.PharmacyName, req.MedicineName, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, pharmacy.ErrMedicineNotFound), errors.Is(err, pharmacy.ErrPharmacyNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "medicine not found")
		case errors.Is(err, pharmacy.ErrInsufficientStock):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return c.JSON(http.StatusCreated, rec)
}

// ListPurchases returns the history oldest-first; ?order=desc pages from
// the most recent sale backwards instead.
func (h *Handler) ListPurchases(c echo.Context) error {
	pg := pagination.FromContext(c)
	newestFirst := c.QueryParam("order") == "desc"
	records, total, err := h.svc.History(c.Request().Context(), pg.Limit, pg.Offset, newestFirst)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(records, total, pg.Limit, pg.Offset))
}
