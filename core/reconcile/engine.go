package reconcile

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// FilterValid drops descriptors that fail struct validation and returns the
// survivors in their original order together with the number dropped.
func FilterValid[D any](descs []D) ([]D, int) {
	valid := make([]D, 0, len(descs))
	skipped := 0
	for _, d := range descs {
		if err := validate.Struct(d); err != nil {
			skipped++
			continue
		}
		valid = append(valid, d)
	}
	return valid, skipped
}

// Reconcile makes the rows of one collection under parentID match desired.
func Reconcile[D any](ctx context.Context, tx *gorm.DB, parentID uint, desired []D, adapter Adapter[D]) (*Result, error) {
	if parentID == 0 {
		return nil, ErrNoParent
	}

	res := &Result{Collection: adapter.Name(), Kept: []uint{}}
	valid, skipped := FilterValid(desired)
	res.Skipped = skipped

	if p, ok := adapter.(Preparer[D]); ok {
		if err := p.Prepare(ctx, tx, parentID, valid); err != nil {
			return nil, fmt.Errorf("failed to prepare %s: %w", adapter.Name(), err)
		}
	}

	seen := make(map[uint]struct{}, len(valid))
	for _, d := range valid {
		id, err := adapter.Upsert(ctx, tx, parentID, d)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert %s: %w", adapter.Name(), err)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		res.Kept = append(res.Kept, id)
	}

	deleted, err := adapter.Sweep(ctx, tx, parentID, res.Kept)
	if err != nil {
		return nil, fmt.Errorf("failed to sweep %s: %w", adapter.Name(), err)
	}
	res.Deleted = deleted

	if c, ok := adapter.(Cascader); ok {
		n, err := c.SweepChildren(ctx, tx, parentID, res.Kept)
		if err != nil {
			return nil, fmt.Errorf("failed to cascade %s: %w", adapter.Name(), err)
		}
		res.CascadeDeleted = n
	}

	observe(ctx, res)
	return res, nil
}

// ReconcileOne upserts a single optional record owned by parentID.
// A nil or invalid descriptor leaves the stored row untouched. There is no sweep.
func ReconcileOne[D any](ctx context.Context, tx *gorm.DB, parentID uint, desc *D, adapter Upserter[D]) (*Result, error) {
	if parentID == 0 {
		return nil, ErrNoParent
	}

	res := &Result{Collection: adapter.Name(), Kept: []uint{}}
	if desc == nil {
		return res, nil
	}
	if err := validate.Struct(desc); err != nil {
		res.Skipped = 1
		observe(ctx, res)
		return res, nil
	}

	id, err := adapter.Upsert(ctx, tx, parentID, *desc)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert %s: %w", adapter.Name(), err)
	}
	res.Kept = append(res.Kept, id)

	observe(ctx, res)
	return res, nil
}

// ReplaceSet makes the membership set of parentID equal members.
// Zero ids are dropped and counted as skipped; duplicates collapse.
func ReplaceSet(ctx context.Context, tx *gorm.DB, parentID uint, members []uint, adapter SetAdapter) (*Result, error) {
	if parentID == 0 {
		return nil, ErrNoParent
	}

	res := &Result{Collection: adapter.Name()}
	res.Kept, res.Skipped = normalizeIDs(members)

	removed, err := adapter.Remove(ctx, tx, parentID, res.Kept)
	if err != nil {
		return nil, fmt.Errorf("failed to remove %s: %w", adapter.Name(), err)
	}
	res.Deleted = removed

	if len(res.Kept) > 0 {
		added, err := adapter.Add(ctx, tx, parentID, res.Kept)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s: %w", adapter.Name(), err)
		}
		res.Added = added
	}

	observe(ctx, res)
	return res, nil
}

func normalizeIDs(ids []uint) ([]uint, int) {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	zero := 0
	for _, id := range ids {
		if id == 0 {
			zero++
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, zero
}
