package pharmacy

import (
	"context"
	"fmt"
)

// Service owns catalog business rules: field validation and the
// identity-preserving update semantics. Storage behaviour lives in the
// repository.
type Service struct {
	catalog CatalogRepository
}

func NewService(catalog CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) ListPharmacies(ctx context.Context) ([]*Pharmacy, error) {
	return s.catalog.Pharmacies(ctx)
}

func (s *Service) GetPharmacy(ctx context.Context, name string) (*Pharmacy, error) {
	return s.catalog.GetByName(ctx, name)
}

func (s *Service) GetMedicine(ctx context.Context, pharmacyName, medicineName string) (*Medicine, error) {
	return s.catalog.GetMedicine(ctx, pharmacyName, medicineName)
}

// ListInventory returns a pharmacy's medicines in inventory order.
func (s *Service) ListInventory(ctx context.Context, pharmacyName string) ([]Medicine, error) {
	p, err := s.catalog.GetByName(ctx, pharmacyName)
	if err != nil {
		return nil, err
	}
	return p.Inventory, nil
}

func (s *Service) AddMedicine(ctx context.Context, m *Medicine) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.PharmacyName == "" {
		return fmt.Errorf("pharmacy_name is required")
	}
	if m.UnitPrice < 0 {
		return fmt.Errorf("unit_price must not be negative")
	}
	if m.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	return s.catalog.AddMedicine(ctx, m)
}

func (s *Service) UpdateMedicine(ctx context.Context, pharmacyName, medicineName string, patch MedicinePatch) error {
	if patch.UnitPrice < 0 {
		return fmt.Errorf("unit_price must not be negative")
	}
	if patch.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	return s.catalog.UpdateMedicine(ctx, pharmacyName, medicineName, patch)
}

func (s *Service) RemoveMedicine(ctx context.Context, pharmacyName, medicineName string) error {
	return s.catalog.RemoveMedicine(ctx, pharmacyName, medicineName)
}
