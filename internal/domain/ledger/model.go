package ledger

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseRecord is one completed sale. Records are immutable once created:
// they are appended to the ledger and never mutated or deleted.
type PurchaseRecord struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	MedicineName string    `json:"medicine_name"`
	PharmacyName string    `json:"pharmacy_name"`
	Quantity     int       `json:"quantity"`
	TotalPrice   float64   `json:"total_price"`
	Timestamp    time.Time `json:"timestamp"`
}
