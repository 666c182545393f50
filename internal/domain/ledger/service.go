package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emsupply/emsupply/internal/domain/pharmacy"
)

// Service runs the purchase flow: validate, decrement stock atomically,
// record the sale.
type Service struct {
	catalog pharmacy.CatalogRepository
	records Repository
	now     func() time.Time
}

func NewService(catalog pharmacy.CatalogRepository, records Repository) *Service {
	return &Service{catalog: catalog, records: records, now: time.Now}
}

// Purchase sells qty units of a medicine to the named customer. The stock
// check and decrement happen as a single locked step inside the catalog, so
// two concurrent purchases can never both claim the last unit. The total is
// priced at time of sale, not at time of display.
func (s *Service) Purchase(ctx context.Context, customerName, pharmacyName, medicineName string, qty int) (*PurchaseRecord, error) {
	if customerName == "" {
		return nil, fmt.Errorf("customer_name is required")
	}
	if qty <= 0 {
		return nil, pharmacy.ErrInvalidQuantity
	}

	sold, err := s.catalog.DecrementStock(ctx, pharmacyName, medicineName, qty)
	if err != nil {
		return nil, err
	}

	rec := &PurchaseRecord{
		ID:           uuid.New(),
		CustomerName: customerName,
		MedicineName: sold.Name,
		PharmacyName: sold.PharmacyName,
		Quantity:     qty,
		TotalPrice:   float64(qty) * sold.UnitPrice,
		Timestamp:    s.now(),
	}
	if err := s.records.Append(ctx, rec); err != nil {
		return nil, fmt.Errorf("record purchase: %w", err)
	}
	return rec, nil
}

// History returns completed purchases, oldest-first by default. With
// newestFirst the page starts at the most recent sale, so offset pages
// backwards through the ledger.
func (s *Service) History(ctx context.Context, limit, offset int, newestFirst bool) ([]*PurchaseRecord, int, error) {
	return s.records.List(ctx, limit, offset, newestFirst)
}
