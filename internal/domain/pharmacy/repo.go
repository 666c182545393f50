package pharmacy

import (
	"context"
	"errors"
)

// Errors returned by the catalog.
var (
	ErrPharmacyNotFound  = errors.New("pharmacy not found")
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrDuplicateMedicine = errors.New("medicine already stocked by pharmacy")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// CatalogRepository holds the pharmacies and their inventories for the
// lifetime of the process. All returned values are copies; callers never
// receive a second mutable handle to catalog state.
type CatalogRepository interface {
	Pharmacies(ctx context.Context) ([]*Pharmacy, error)
	GetByName(ctx context.Context, name string) (*Pharmacy, error)
	GetMedicine(ctx context.Context, pharmacyName, medicineName string) (*Medicine, error)
	AddMedicine(ctx context.Context, m *Medicine) error
	UpdateMedicine(ctx context.Context, pharmacyName, medicineName string, patch MedicinePatch) error
	RemoveMedicine(ctx context.Context, pharmacyName, medicineName string) error

	// DecrementStock performs the stock check and decrement as one locked
	// step and returns the medicine as it was at the moment of sale.
	DecrementStock(ctx context.Context, pharmacyName, medicineName string, qty int) (*Medicine, error)
}
