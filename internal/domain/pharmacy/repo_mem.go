package pharmacy

import (
	"context"
	"sync"
)

// MemCatalog is the in-memory CatalogRepository. Pharmacies are kept in a
// slice so iteration order is the seed/insertion order, which the ranking
// contract depends on for tie-breaking.
type MemCatalog struct {
	mu         sync.RWMutex
	pharmacies []*Pharmacy
}

// NewMemCatalog creates a catalog populated with the given pharmacies. The
// catalog takes ownership of the slice and its contents.
func NewMemCatalog(pharmacies []*Pharmacy) *MemCatalog {
	return &MemCatalog{pharmacies: pharmacies}
}

// Pharmacies returns a snapshot copy of every pharmacy in insertion order.
func (c *MemCatalog) Pharmacies(_ context.Context) ([]*Pharmacy, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*Pharmacy, 0, len(c.pharmacies))
	for _, p := range c.pharmacies {
		out = append(out, copyPharmacy(p))
	}
	return out, nil
}

// GetByName returns a copy of the pharmacy with the exact given name.
func (c *MemCatalog) GetByName(_ context.Context, name string) (*Pharmacy, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.findPharmacy(name)
	if p == nil {
		return nil, ErrPharmacyNotFound
	}
	return copyPharmacy(p), nil
}

// GetMedicine returns a copy of the medicine matched exactly on both keys.
func (c *MemCatalog) GetMedicine(_ context.Context, pharmacyName, medicineName string) (*Medicine, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.findPharmacy(pharmacyName)
	if p == nil {
		return nil, ErrPharmacyNotFound
	}
	for i := range p.Inventory {
		if p.Inventory[i].Name == medicineName {
			m := p.Inventory[i]
			return &m, nil
		}
	}
	return nil, ErrMedicineNotFound
}

// AddMedicine appends a medicine to the named pharmacy's inventory. Unknown
// pharmacies and duplicate names are reported explicitly, never swallowed.
func (c *MemCatalog) AddMedicine(_ context.Context, m *Medicine) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.findPharmacy(m.PharmacyName)
	if p == nil {
		return ErrPharmacyNotFound
	}
	for i := range p.Inventory {
		if p.Inventory[i].Name == m.Name {
			return ErrDuplicateMedicine
		}
	}
	p.Inventory = append(p.Inventory, *m)
	return nil
}

// UpdateMedicine overwrites the mutable fields of an existing medicine in
// place. Identity (name, pharmacy) is never changed.
func (c *MemCatalog) UpdateMedicine(_ context.Context, pharmacyName, medicineName string, patch MedicinePatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.findPharmacy(pharmacyName)
	if p == nil {
		return ErrPharmacyNotFound
	}
	for i := range p.Inventory {
		if p.Inventory[i].Name == medicineName {
			p.Inventory[i].Category = patch.Category
			p.Inventory[i].Supplier = patch.Supplier
			p.Inventory[i].UnitPrice = patch.UnitPrice
			p.Inventory[i].Stock = patch.Stock
			return nil
		}
	}
	return ErrMedicineNotFound
}

// RemoveMedicine removes the first matching medicine. Removing a medicine
// that does not exist is a no-op, not an error (idempotent delete).
func (c *MemCatalog) RemoveMedicine(_ context.Context, pharmacyName, medicineName string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.findPharmacy(pharmacyName)
	if p == nil {
		return ErrPharmacyNotFound
	}
	for i := range p.Inventory {
		if p.Inventory[i].Name == medicineName {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			return nil
		}
	}
	return nil
}

// DecrementStock checks and decrements stock under one write lock, so no
// interleaving purchase can observe a stale stock value. The returned copy
// reflects the medicine at the moment of sale, including the unit price the
// sale is settled at.
func (c *MemCatalog) DecrementStock(_ context.Context, pharmacyName, medicineName string, qty int) (*Medicine, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.findPharmacy(pharmacyName)
	if p == nil {
		return nil, ErrMedicineNotFound
	}
	for i := range p.Inventory {
		if p.Inventory[i].Name == medicineName {
			if p.Inventory[i].Stock < qty {
				return nil, ErrInsufficientStock
			}
			sold := p.Inventory[i]
			p.Inventory[i].Stock -= qty
			return &sold, nil
		}
	}
	return nil, ErrMedicineNotFound
}

// findPharmacy must be called with the lock held.
func (c *MemCatalog) findPharmacy(name string) *Pharmacy {
	for _, p := range c.pharmacies {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func copyPharmacy(p *Pharmacy) *Pharmacy {
	cp := *p
	cp.Inventory = make([]Medicine, len(p.Inventory))
	copy(cp.Inventory, p.Inventory)
	return &cp
}
