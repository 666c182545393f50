// Package seed supplies the demo dataset the service starts with: the Dhaka
// pharmacies and their inventories, the named buyer locations, and the
// hospital/pharmacy route graph edges.
package seed

import (
	"github.com/emsupply/emsupply/internal/domain/pharmacy"
	"github.com/emsupply/emsupply/internal/platform/geo"
)

// Pharmacies returns the starting catalog. Inventory order matters: it is
// the tie-break order for unranked (admin) listings.
func Pharmacies() []*pharmacy.Pharmacy {
	return []*pharmacy.Pharmacy{
		{
			ID:       "p1",
			Name:     "Lazz Pharma (Uttara)",
			Location: geo.Coordinate{Latitude: 23.8737, Longitude: 90.3965},
			Inventory: []pharmacy.Medicine{
				{Name: "Napa Extend", Category: "Painkiller", Supplier: "Beximco", UnitPrice: 6.00, Stock: 200, PharmacyName: "Lazz Pharma (Uttara)"},
				{Name: "Fexo 120", Category: "Antihistamine", Supplier: "Square", UnitPrice: 8.00, Stock: 150, PharmacyName: "Lazz Pharma (Uttara)"},
				{Name: "Monas 10", Category: "Asthma", Supplier: "Acme", UnitPrice: 12.50, Stock: 90, PharmacyName: "Lazz Pharma (Uttara)"},
			},
		},
		{
			ID:       "p2",
			Name:     "Medex Pharmacy (Gulshan)",
			Location: geo.Coordinate{Latitude: 23.7949, Longitude: 90.4143},
			Inventory: []pharmacy.Medicine{
				{Name: "Seclo 20", Category: "Antacid", Supplier: "Square", UnitPrice: 7.00, Stock: 300, PharmacyName: "Medex Pharmacy (Gulshan)"},
				{Name: "Ceevit", Category: "Vitamin", Supplier: "GSK", UnitPrice: 3.00, Stock: 500, PharmacyName: "Medex Pharmacy (Gulshan)"},
				{Name: "Napa Extend", Category: "Painkiller", Supplier: "Beximco", UnitPrice: 6.10, Stock: 180, PharmacyName: "Medex Pharmacy (Gulshan)"},
			},
		},
		{
			ID:       "p3",
			Name:     "Health Hub (Dhanmondi)",
			Location: geo.Coordinate{Latitude: 23.7465, Longitude: 90.3765},
			Inventory: []pharmacy.Medicine{
				{Name: "Tufnil", Category: "Painkiller", Supplier: "Opsonin", UnitPrice: 5.00, Stock: 120, PharmacyName: "Health Hub (Dhanmondi)"},
				{Name: "Azithromycin 500", Category: "Antibiotic", Supplier: "Beximco", UnitPrice: 35.00, Stock: 80, PharmacyName: "Health Hub (Dhanmondi)"},
				{Name: "Finix 20", Category: "Antacid", Supplier: "Opsonin", UnitPrice: 7.50, Stock: 220, PharmacyName: "Health Hub (Dhanmondi)"},
			},
		},
		{
			ID:       "p4",
			Name:     "Mirpur City Pharma",
			Location: geo.Coordinate{Latitude: 23.8059, Longitude: 90.3493},
			Inventory: []pharmacy.Medicine{
				{Name: "Napa Extend", Category: "Painkiller", Supplier: "Beximco", UnitPrice: 5.90, Stock: 250, PharmacyName: "Mirpur City Pharma"},
				{Name: "Seclo 20", Category: "Antacid", Supplier: "Square", UnitPrice: 7.10, Stock: 180, PharmacyName: "Mirpur City Pharma"},
				{Name: "Fexo 120", Category: "Antihistamine", Supplier: "Square", UnitPrice: 8.25, Stock: 130, PharmacyName: "Mirpur City Pharma"},
			},
		},
	}
}

// NamedLocation lets a buyer pick a starting point without typing raw
// coordinates.
type NamedLocation struct {
	Name     string         `json:"name"`
	Location geo.Coordinate `json:"location"`
}

// NamedLocations returns the selectable buyer locations in alphabetical
// order.
func NamedLocations() []NamedLocation {
	return []NamedLocation{
		{Name: "Banani", Location: geo.Coordinate{Latitude: 23.7925, Longitude: 90.4078}},
		{Name: "Bashundhara R/A", Location: geo.Coordinate{Latitude: 23.8153, Longitude: 90.4253}},
		{Name: "Dhanmondi", Location: geo.Coordinate{Latitude: 23.7465, Longitude: 90.3765}},
		{Name: "Gulshan", Location: geo.Coordinate{Latitude: 23.7949, Longitude: 90.4143}},
		{Name: "Mirpur-10", Location: geo.Coordinate{Latitude: 23.8059, Longitude: 90.3693}},
		{Name: "Motijheel", Location: geo.Coordinate{Latitude: 23.7313, Longitude: 90.4158}},
		{Name: "Uttara", Location: geo.Coordinate{Latitude: 23.8737, Longitude: 90.3965}},
	}
}

// LookupLocation resolves a named location. The second return reports
// whether the name is known.
func LookupLocation(name string) (geo.Coordinate, bool) {
	for _, nl := range NamedLocations() {
		if nl.Name == name {
			return nl.Location, true
		}
	}
	return geo.Coordinate{}, false
}

// RouteNodes returns the route graph's node names in configuration order.
func RouteNodes() []string {
	return []string{"hospital", "pharmacy1", "pharmacy2", "pharmacy3"}
}

// RouteEdge is one symmetric weighted edge of the seeded route graph.
type RouteEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	WeightKm float64 `json:"weight_km"`
}

// RouteEdges returns the seeded edges. The hospital-pharmacy2 weight of
// -20.0 is carried over from the source dataset as-is; path selection is by
// hop count, so it only shows up in the reported total distance.
func RouteEdges() []RouteEdge {
	return []RouteEdge{
		{From: "hospital", To: "pharmacy1", WeightKm: 6.5},
		{From: "hospital", To: "pharmacy2", WeightKm: -20.0},
		{From: "hospital", To: "pharmacy3", WeightKm: 6.5},
		{From: "pharmacy1", To: "pharmacy2", WeightKm: 5.5},
		{From: "pharmacy1", To: "pharmacy3", WeightKm: 6.0},
		{From: "pharmacy2", To: "pharmacy3", WeightKm: 9.0},
	}
}
