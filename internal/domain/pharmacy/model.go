package pharmacy

import "github.com/emsupply/emsupply/internal/platform/geo"

// Medicine is one stocked item in a pharmacy's inventory. Name and the
// owning pharmacy are fixed at creation; renaming or moving a medicine is
// unsupported, edits preserve identity.
type Medicine struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Supplier     string  `json:"supplier"`
	UnitPrice    float64 `json:"unit_price"`
	Stock        int     `json:"stock"`
	PharmacyName string  `json:"pharmacy_name"`
}

// MedicinePatch carries the mutable fields of a medicine. The (pharmacy,
// name) pair only locates the record, it is never changed by an update.
type MedicinePatch struct {
	Category  string  `json:"category"`
	Supplier  string  `json:"supplier"`
	UnitPrice float64 `json:"unit_price"`
	Stock     int     `json:"stock"`
}

// Pharmacy is a named store with a location and an ordered inventory of
// medicines. The catalog owns its Pharmacy values exclusively; everything
// handed out of the repository is a copy.
type Pharmacy struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Location  geo.Coordinate `json:"location"`
	Inventory []Medicine     `json:"inventory"`
}
