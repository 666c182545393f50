package search

import (
	"context"
	"sort"

	"github.com/emsupply/emsupply/internal/domain/pharmacy"
	"github.com/emsupply/emsupply/internal/platform/geo"
)

// NoDistance is the sentinel reported when a ranking runs without a buyer
// location (administrative context).
const NoDistance = -1.0

// Result is an ephemeral projection of one matching medicine. It copies the
// medicine's scalar fields; it never holds a mutable handle into the
// catalog.
type Result struct {
	PharmacyID   string  `json:"pharmacy_id"`
	PharmacyName string  `json:"pharmacy_name"`
	Medicine     string  `json:"medicine"`
	Category     string  `json:"category"`
	Supplier     string  `json:"supplier"`
	UnitPrice    float64 `json:"unit_price"`
	Stock        int     `json:"stock"`
	DistanceKm   float64 `json:"distance_km"`
}

// Service ranks catalog medicines for buyers and admins.
type Service struct {
	catalog pharmacy.CatalogRepository
}

func NewService(catalog pharmacy.CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

// RankByDistance scans every pharmacy and returns the matching, in-stock
// medicines. Out-of-stock items are excluded from buyer-facing results
// entirely. With a location the results are stable-sorted ascending by
// distance, so the first result's pharmacy is the closest one stocking any
// match. Without a location distances are the NoDistance sentinel and the
// order is catalog insertion order.
func (s *Service) RankByDistance(ctx context.Context, term string, userLocation *geo.Coordinate) ([]Result, error) {
	pharmacies, err := s.catalog.Pharmacies(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0)
	for _, p := range pharmacies {
		for _, m := range FilterByNameSubstring(p.Inventory, term) {
			if m.Stock <= 0 {
				continue
			}
			distance := NoDistance
			if userLocation != nil {
				distance = geo.DistanceKm(*userLocation, p.Location)
			}
			results = append(results, Result{
				PharmacyID:   p.ID,
				PharmacyName: p.Name,
				Medicine:     m.Name,
				Category:     m.Category,
				Supplier:     m.Supplier,
				UnitPrice:    m.UnitPrice,
				Stock:        m.Stock,
				DistanceKm:   distance,
			})
		}
	}

	if userLocation != nil {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceKm < results[j].DistanceKm
		})
	}
	return results, nil
}

// FuzzyFind runs the LCS matcher over every in-stock medicine in the
// catalog, in catalog order, and returns the best match as a projection.
func (s *Service) FuzzyFind(ctx context.Context, query string) (*Result, error) {
	pharmacies, err := s.catalog.Pharmacies(ctx)
	if err != nil {
		return nil, err
	}

	var meds []pharmacy.Medicine
	var owners []*pharmacy.Pharmacy
	for _, p := range pharmacies {
		for _, m := range p.Inventory {
			if m.Stock <= 0 {
				continue
			}
			meds = append(meds, m)
			owners = append(owners, p)
		}
	}

	idx, err := FuzzyBestMatch(meds, query)
	if err != nil {
		return nil, err
	}
	m, p := meds[idx], owners[idx]
	return &Result{
		PharmacyID:   p.ID,
		PharmacyName: p.Name,
		Medicine:     m.Name,
		Category:     m.Category,
		Supplier:     m.Supplier,
		UnitPrice:    m.UnitPrice,
		Stock:        m.Stock,
		DistanceKm:   NoDistance,
	}, nil
}
