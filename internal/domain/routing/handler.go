package routing

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	graph *Graph
}

func NewHandler(graph *Graph) *Handler {
	return &Handler{graph: graph}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/routes/nodes", h.ListNodes)
	api.GET("/routes/shortest", h.ShortestPath)
	api.PUT("/routes/edges", h.SetEdge)
}

func (h *Handler) ListNodes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.graph.Nodes())
}

// shortestPathResponse reports the chosen route; reachable distinguishes an
// empty route from a degenerate one.
type shortestPathResponse struct {
	Route     Route `json:"route"`
	Reachable bool  `json:"reachable"`
}

func (h *Handler) ShortestPath(c echo.Context) error {
	from, to := c.QueryParam("from"), c.QueryParam("to")
	if from == "" || to == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "from and to are required")
	}

	route, err := h.graph.ShortestPath(from, to)
	if err != nil {
		if errors.Is(err, ErrNodeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, shortestPathResponse{
		Route:     route,
		Reachable: len(route.Nodes) > 0,
	})
}

type setEdgeRequest struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	WeightKm float64 `json:"weight_km"`
}

func (h *Handler) SetEdge(c echo.Context) error {
	var req setEdgeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.From == "" || req.To == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "from and to are required")
	}
	if err := h.graph.SetEdgeWeight(req.From, req.To, req.WeightKm); err != nil {
		if errors.Is(err, ErrNodeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
