package search

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/emsupply/emsupply/internal/domain/pharmacy"
	"github.com/emsupply/emsupply/internal/platform/geo"
	"github.com/emsupply/emsupply/internal/platform/seed"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/search", h.Search)
	api.GET("/search/fuzzy", h.Fuzzy)
	api.GET("/locations", h.ListLocations)
}

// searchResponse carries the ranked results plus the closest qualifying
// pharmacy, which views use for highlighting.
type searchResponse struct {
	Results         []Result `json:"results"`
	ClosestPharmacy string   `json:"closest_pharmacy,omitempty"`
}

// Search ranks matching medicines. The buyer location comes either from
// ?location=<named location> or from ?lat=&lon=; with neither, distances are
// not computed and results stay in catalog order.
func (h *Handler) Search(c echo.Context) error {
	loc, err := buyerLocation(c)
	if err != nil {
		return err
	}

	results, err := h.svc.RankByDistance(c.Request().Context(), c.QueryParam("q"), loc)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := searchResponse{Results: results}
	if loc != nil && len(results) > 0 {
		resp.ClosestPharmacy = results[0].PharmacyName
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Fuzzy(c echo.Context) error {
	result, err := h.svc.FuzzyFind(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyQuery):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, pharmacy.ErrMedicineNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "no medicine matches query")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.JSON(http.StatusOK, result)
}

func (h *Handler) ListLocations(c echo.Context) error {
	return c.JSON(http.StatusOK, seed.NamedLocations())
}

func buyerLocation(c echo.Context) (*geo.Coordinate, error) {
	if name := c.QueryParam("location"); name != "" {
		loc, ok := seed.LookupLocation(name)
		if !ok {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "unknown location")
		}
		return &loc, nil
	}

	latStr, lonStr := c.QueryParam("lat"), c.QueryParam("lon")
	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid lat")
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid lon")
	}
	return &geo.Coordinate{Latitude: lat, Longitude: lon}, nil
}
