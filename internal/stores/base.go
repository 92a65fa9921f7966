// internal/stores/base.go
package stores

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/minshop/storefront-api/internal/stores/snapshot"
)

// baseStore carries the pieces both aggregate stores share: the snapshot
// backend, the storage key, and the hydration flag.
type baseStore struct {
	mu       sync.Mutex
	snap     snapshot.Store
	key      string
	log      *logrus.Entry
	hydrated bool
}

// load reads the raw snapshot. A missing snapshot returns (nil, nil); a
// storage failure is logged and swallowed so the store keeps working from
// memory.
func (b *baseStore) load(ctx context.Context) ([]byte, error) {
	data, err := b.snap.Get(ctx, b.key)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			return nil, nil
		}
		b.log.WithError(err).Warn("Snapshot read failed; starting empty")
		return nil, err
	}
	return data, nil
}

// persist writes the aggregate after a mutation. Persistence is best effort:
// failures are logged and the in-memory state stays authoritative.
func (b *baseStore) persist(ctx context.Context, aggregate interface{}) {
	data, err := json.Marshal(aggregate)
	if err != nil {
		b.log.WithError(err).Error("Failed to marshal snapshot")
		return
	}
	if err := b.snap.Set(ctx, b.key, data); err != nil {
		b.log.WithError(err).Warn("Snapshot write failed; state kept in memory")
	}
}
