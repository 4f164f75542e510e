package reconcile

import (
	"context"

	"gorm.io/gorm"
)

// Upserter writes a single descriptor of type D for a parent.
type Upserter[D any] interface {
	// Name returns the collection name used in results and metrics.
	Name() string

	// Upsert writes desc under parentID, matching an existing row on the
	// adapter's match key, and returns the id of the row that landed.
	Upsert(ctx context.Context, tx *gorm.DB, parentID uint, desc D) (uint, error)
}

// Adapter defines the collection-specific half of a mark-and-sweep pass.
type Adapter[D any] interface {
	Upserter[D]

	// Sweep deletes every row scoped to parentID whose id is not in kept.
	// An empty kept deletes the whole scope.
	Sweep(ctx context.Context, tx *gorm.DB, parentID uint, kept []uint) (int64, error)
}

// Cascader is implemented by adapters whose rows own grandchildren.
// SweepChildren runs after the adapter's own sweep and removes grandchildren
// scoped to parentID whose owner id is not in kept.
type Cascader interface {
	SweepChildren(ctx context.Context, tx *gorm.DB, parentID uint, kept []uint) (int64, error)
}

// Preparer is implemented by adapters that must see the whole valid batch
// before the first row is written.
type Preparer[D any] interface {
	Prepare(ctx context.Context, tx *gorm.DB, parentID uint, valid []D) error
}

// SetAdapter manages a pure membership set owned by a parent.
type SetAdapter interface {
	Name() string

	// Remove deletes memberships of parentID whose member is not in keep.
	Remove(ctx context.Context, tx *gorm.DB, parentID uint, keep []uint) (int64, error)

	// Add inserts memberships, ignoring ones that already exist.
	Add(ctx context.Context, tx *gorm.DB, parentID uint, members []uint) (int64, error)
}

// ExceptIDs scopes tx to rows whose column is not in kept.
// With an empty kept the scope is left untouched so the caller's delete
// covers every row; gorm renders NOT IN over an empty slice as a no-match.
func ExceptIDs(tx *gorm.DB, column string, kept []uint) *gorm.DB {
	if len(kept) == 0 {
		return tx
	}
	return tx.Where(column+" NOT IN ?", kept)
}
