package ledger

import (
	"context"
	"sync"
)

// MemLedger is the in-memory Repository. The backing slice is append-only;
// List hands out copies so records stay immutable.
type MemLedger struct {
	mu      sync.RWMutex
	records []*PurchaseRecord
}

func NewMemLedger() *MemLedger {
	return &MemLedger{}
}

func (l *MemLedger) Append(_ context.Context, r *PurchaseRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := *r
	l.records = append(l.records, &rec)
	return nil
}

func (l *MemLedger) List(_ context.Context, limit, offset int, newestFirst bool) ([]*PurchaseRecord, int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := len(l.records)
	if limit <= 0 || offset < 0 || offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	out := make([]*PurchaseRecord, 0, end-offset)
	for i := offset; i < end; i++ {
		idx := i
		if newestFirst {
			idx = total - 1 - i
		}
		rec := *l.records[idx]
		out = append(out, &rec)
	}
	return out, total, nil
}
