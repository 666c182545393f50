package ledger

import "context"

// Repository is the append-only purchase ledger, stored insertion-ordered
// oldest-first. List pages the ledger from either end; newestFirst walks
// backwards from the most recent sale.
type Repository interface {
	Append(ctx context.Context, r *PurchaseRecord) error
	List(ctx context.Context, limit, offset int, newestFirst bool) ([]*PurchaseRecord, int, error)
}
