package reconcile

import (
	"context"
	"errors"
	"sort"
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type itemDesc struct {
	ID  uint
	Ref uint `validate:"required"`
}

// memAdapter keeps rows for a single parent in memory, keyed by id, matching on ID then Ref.
type memAdapter struct {
	rows      map[uint]uint // id -> ref
	children  map[uint]uint // child id -> owner id
	nextID    uint
	upsertErr error
	cascade   bool
}

func newMemAdapter() *memAdapter {
	return &memAdapter{rows: map[uint]uint{}, children: map[uint]uint{}, nextID: 1}
}

func (m *memAdapter) Name() string { return "items" }

func (m *memAdapter) Upsert(ctx context.Context, tx *gorm.DB, parentID uint, d itemDesc) (uint, error) {
	if m.upsertErr != nil {
		return 0, m.upsertErr
	}
	if ref, ok := m.rows[d.ID]; ok && ref == d.Ref {
		return d.ID, nil
	}
	for id, ref := range m.rows {
		if ref == d.Ref {
			return id, nil
		}
	}
	id := m.nextID
	m.nextID++
	m.rows[id] = d.Ref
	return id, nil
}

func (m *memAdapter) Sweep(ctx context.Context, tx *gorm.DB, parentID uint, kept []uint) (int64, error) {
	keep := map[uint]bool{}
	for _, id := range kept {
		keep[id] = true
	}
	var n int64
	for id := range m.rows {
		if !keep[id] {
			delete(m.rows, id)
			n++
		}
	}
	return n, nil
}

func (m *memAdapter) ids() []uint {
	out := []uint{}
	for id := range m.rows {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

type cascadingAdapter struct {
	*memAdapter
}

func (c cascadingAdapter) SweepChildren(ctx context.Context, tx *gorm.DB, parentID uint, kept []uint) (int64, error) {
	keep := map[uint]bool{}
	for _, id := range kept {
		keep[id] = true
	}
	var n int64
	for child, owner := range c.children {
		if !keep[owner] {
			delete(c.children, child)
			n++
		}
	}
	return n, nil
}

// preparingAdapter records the batch it was prepared with.
type preparingAdapter struct {
	*memAdapter
	prepared   []itemDesc
	prepareErr error
}

func (p *preparingAdapter) Prepare(ctx context.Context, tx *gorm.DB, parentID uint, valid []itemDesc) error {
	if p.prepareErr != nil {
		return p.prepareErr
	}
	p.prepared = valid
	return nil
}

func counterValue(t *testing.T, collection, action string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, rowsTotal.WithLabelValues(collection, action).Write(&m))
	return m.GetCounter().GetValue()
}

func TestFilterValid(t *testing.T) {
	in := []itemDesc{{Ref: 1}, {ID: 4}, {Ref: 2}, {}}
	valid, skipped := FilterValid(in)
	assert.Equal(t, []itemDesc{{Ref: 1}, {Ref: 2}}, valid)
	assert.Equal(t, 2, skipped)
}

func TestReconcile_NoParent(t *testing.T) {
	a := newMemAdapter()
	res, err := Reconcile(context.Background(), nil, 0, []itemDesc{{Ref: 1}}, Adapter[itemDesc](a))
	assert.ErrorIs(t, err, ErrNoParent)
	assert.Nil(t, res)
	assert.Empty(t, a.rows)
}

func TestReconcile_CreateSweepAndIdempotence(t *testing.T) {
	ctx := context.Background()
	a := newMemAdapter()
	desired := []itemDesc{{Ref: 10}, {Ref: 20}, {}}

	res, err := Reconcile(ctx, nil, 1, desired, Adapter[itemDesc](a))
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, res.Kept)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, int64(0), res.Deleted)

	// Same snapshot again changes nothing.
	res, err = Reconcile(ctx, nil, 1, desired, Adapter[itemDesc](a))
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, res.Kept)
	assert.Equal(t, int64(0), res.Deleted)
	assert.Equal(t, []uint{1, 2}, a.ids())

	// Dropping one descriptor sweeps its row.
	res, err = Reconcile(ctx, nil, 1, []itemDesc{{ID: 2, Ref: 20}}, Adapter[itemDesc](a))
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, res.Kept)
	assert.Equal(t, int64(1), res.Deleted)
	assert.Equal(t, []uint{2}, a.ids())
}

func TestReconcile_EmptyDeletesAll(t *testing.T) {
	ctx := context.Background()
	a := newMemAdapter()
	_, err := Reconcile(ctx, nil, 1, []itemDesc{{Ref: 1}, {Ref: 2}}, Adapter[itemDesc](a))
	require.NoError(t, err)

	res, err := Reconcile(ctx, nil, 1, []itemDesc{}, Adapter[itemDesc](a))
	require.NoError(t, err)
	assert.Empty(t, res.Kept)
	assert.Equal(t, int64(2), res.Deleted)
	assert.Empty(t, a.rows)
}

func TestReconcile_DuplicateMatchCollapses(t *testing.T) {
	a := newMemAdapter()
	res, err := Reconcile(context.Background(), nil, 1, []itemDesc{{Ref: 5}, {Ref: 5}}, Adapter[itemDesc](a))
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, res.Kept)
	assert.Len(t, a.rows, 1)
}

func TestReconcile_Cascade(t *testing.T) {
	ctx := context.Background()
	a := cascadingAdapter{newMemAdapter()}
	_, err := Reconcile(ctx, nil, 1, []itemDesc{{Ref: 1}, {Ref: 2}}, Adapter[itemDesc](a))
	require.NoError(t, err)
	a.children[100] = 1
	a.children[101] = 2
	a.children[102] = 2

	res, err := Reconcile(ctx, nil, 1, []itemDesc{{ID: 1, Ref: 1}}, Adapter[itemDesc](a))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Deleted)
	assert.Equal(t, int64(2), res.CascadeDeleted)
	assert.Equal(t, map[uint]uint{100: 1}, a.children)
}

func TestReconcile_UpsertError(t *testing.T) {
	a := newMemAdapter()
	a.upsertErr = errors.New("db down")
	_, err := Reconcile(context.Background(), nil, 1, []itemDesc{{Ref: 1}}, Adapter[itemDesc](a))
	assert.EqualError(t, err, "failed to upsert items: db down")
}

func TestReconcileOne(t *testing.T) {
	ctx := context.Background()

	t.Run("Nil descriptor is a no-op", func(t *testing.T) {
		a := newMemAdapter()
		res, err := ReconcileOne[itemDesc](ctx, nil, 1, nil, a)
		require.NoError(t, err)
		assert.Empty(t, res.Kept)
		assert.Empty(t, a.rows)
	})

	t.Run("Invalid descriptor is skipped", func(t *testing.T) {
		a := newMemAdapter()
		res, err := ReconcileOne(ctx, nil, 1, &itemDesc{ID: 3}, Upserter[itemDesc](a))
		require.NoError(t, err)
		assert.Equal(t, 1, res.Skipped)
		assert.Empty(t, a.rows)
	})

	t.Run("Upserts without sweeping", func(t *testing.T) {
		a := newMemAdapter()
		a.rows[9] = 90
		res, err := ReconcileOne(ctx, nil, 1, &itemDesc{Ref: 7}, Upserter[itemDesc](a))
		require.NoError(t, err)
		assert.Len(t, res.Kept, 1)
		assert.Len(t, a.rows, 2)
	})

	t.Run("No parent", func(t *testing.T) {
		_, err := ReconcileOne(ctx, nil, 0, &itemDesc{Ref: 7}, Upserter[itemDesc](newMemAdapter()))
		assert.ErrorIs(t, err, ErrNoParent)
	})
}

type memSet struct {
	members map[uint]bool
}

func (s *memSet) Name() string { return "members" }

func (s *memSet) Remove(ctx context.Context, tx *gorm.DB, parentID uint, keep []uint) (int64, error) {
	k := map[uint]bool{}
	for _, id := range keep {
		k[id] = true
	}
	var n int64
	for id := range s.members {
		if !k[id] {
			delete(s.members, id)
			n++
		}
	}
	return n, nil
}

func (s *memSet) Add(ctx context.Context, tx *gorm.DB, parentID uint, members []uint) (int64, error) {
	var n int64
	for _, id := range members {
		if !s.members[id] {
			s.members[id] = true
			n++
		}
	}
	return n, nil
}

func TestReplaceSet(t *testing.T) {
	ctx := context.Background()
	s := &memSet{members: map[uint]bool{1: true, 2: true}}

	res, err := ReplaceSet(ctx, nil, 1, []uint{3, 2, 0, 3}, s)
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 3}, res.Kept)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, int64(1), res.Added)
	assert.Equal(t, int64(1), res.Deleted)
	assert.Equal(t, map[uint]bool{2: true, 3: true}, s.members)

	res, err = ReplaceSet(ctx, nil, 1, nil, s)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Deleted)
	assert.Empty(t, s.members)

	_, err = ReplaceSet(ctx, nil, 0, []uint{1}, s)
	assert.ErrorIs(t, err, ErrNoParent)
}

func TestReconcile_PrepareSeesValidBatch(t *testing.T) {
	ctx := context.Background()
	a := &preparingAdapter{memAdapter: newMemAdapter()}

	_, err := Reconcile(ctx, nil, 1, []itemDesc{{Ref: 1}, {}, {Ref: 2}}, Adapter[itemDesc](a))
	require.NoError(t, err)
	assert.Equal(t, []itemDesc{{Ref: 1}, {Ref: 2}}, a.prepared)

	a.prepareErr = errors.New("boom")
	_, err = Reconcile(ctx, nil, 1, []itemDesc{{Ref: 3}}, Adapter[itemDesc](a))
	assert.ErrorIs(t, err, a.prepareErr)
	assert.Equal(t, []uint{1, 2}, a.ids(), "no row written after a failed prepare")
}

func TestRecorder_CountsOnlyOnFlush(t *testing.T) {
	base := counterValue(t, "items", ActionKept)

	ctx, rec := WithRecorder(context.Background())
	_, err := Reconcile(ctx, nil, 1, []itemDesc{{Ref: 1}, {Ref: 2}}, Adapter[itemDesc](newMemAdapter()))
	require.NoError(t, err)
	assert.Equal(t, base, counterValue(t, "items", ActionKept))

	rec.Flush()
	assert.Equal(t, base+2, counterValue(t, "items", ActionKept))

	rec.Flush()
	assert.Equal(t, base+2, counterValue(t, "items", ActionKept), "flush empties the recorder")
}

func TestRecorder_DiscardDropsResults(t *testing.T) {
	base := counterValue(t, "items", ActionKept)

	ctx, rec := WithRecorder(context.Background())
	_, err := Reconcile(ctx, nil, 1, []itemDesc{{Ref: 1}}, Adapter[itemDesc](newMemAdapter()))
	require.NoError(t, err)
	rec.Discard()
	rec.Flush()

	assert.Equal(t, base, counterValue(t, "items", ActionKept))
}
