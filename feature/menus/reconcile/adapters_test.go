package reconcile

import (
	"context"
	"testing"

	"menu-manager/core/database/dbtest"
	"menu-manager/core/reconcile"
	"menu-manager/feature/menus/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) (*gorm.DB, uint) {
	t.Helper()
	db := dbtest.SQLite(t)
	require.NoError(t, models.Migrate(db))

	menu := models.Menu{Name: "Pizza", Price: 9.5, Status: true}
	require.NoError(t, db.Create(&menu).Error)
	return db, menu.ID
}

func reconcileOptions(t *testing.T, db *gorm.DB, menuID uint, desired []models.MenuOptionDescriptor) *reconcile.Result {
	t.Helper()
	var res *reconcile.Result
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		res, err = reconcile.Reconcile(context.Background(), tx, menuID, desired, reconcile.Adapter[models.MenuOptionDescriptor](NewOptionAdapter(nil)))
		return err
	})
	require.NoError(t, err)
	return res
}

func optionIDs(t *testing.T, db *gorm.DB, menuID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, db.Model(&models.MenuOption{}).Where("menu_id = ?", menuID).Order("option_id").Pluck("option_id", &ids).Error)
	return ids
}

func countValues(t *testing.T, db *gorm.DB, menuID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.MenuOptionValue{}).Where("menu_id = ?", menuID).Count(&n).Error)
	return n
}

func TestOptionAdapter_PersistedSetMatchesValidDescriptors(t *testing.T) {
	db, menuID := setupDB(t)

	res := reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Required: true},
		{OptionID: 2},
		{},            // missing option_id
		{OptionID: 2}, // duplicate match key
		{ID: 999},     // stale id, still no option_id
		{OptionID: 3, Priority: 5},
	})

	assert.Equal(t, 2, res.Skipped)
	assert.Len(t, res.Kept, 3)
	assert.Equal(t, []uint{1, 2, 3}, optionIDs(t, db, menuID))
}

func TestOptionAdapter_Idempotent(t *testing.T) {
	db, menuID := setupDB(t)
	desired := []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{{OptionValueID: 10, NewPrice: 1}, {OptionValueID: 11}}},
		{OptionID: 2},
	}

	first := reconcileOptions(t, db, menuID, desired)
	second := reconcileOptions(t, db, menuID, desired)

	assert.Equal(t, first.Kept, second.Kept)
	assert.Equal(t, int64(0), second.Deleted)
	assert.Equal(t, []uint{1, 2}, optionIDs(t, db, menuID))
	assert.Equal(t, int64(2), countValues(t, db, menuID))
}

func TestOptionAdapter_ExactMatchUpdatesInPlace(t *testing.T) {
	db, menuID := setupDB(t)
	first := reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{{OptionID: 1}})

	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{{ID: first.Kept[0], OptionID: 1, Priority: 7, Required: true}})

	var row models.MenuOption
	require.NoError(t, db.First(&row, first.Kept[0]).Error)
	assert.Equal(t, 7, row.Priority)
	assert.True(t, row.Required)
}

func TestOptionAdapter_CascadingSweep(t *testing.T) {
	db, menuID := setupDB(t)
	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{{OptionValueID: 10}}},
		{OptionID: 2, Values: []models.MenuOptionValueDescriptor{{OptionValueID: 20}, {OptionValueID: 21}}},
	})
	require.Equal(t, int64(3), countValues(t, db, menuID))

	// Option 2 disappears; its values go with it although nothing names them.
	res := reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{{OptionID: 1}})

	assert.Equal(t, int64(1), res.Deleted)
	assert.Equal(t, int64(2), res.CascadeDeleted)
	assert.Equal(t, []uint{1}, optionIDs(t, db, menuID))
	assert.Equal(t, int64(1), countValues(t, db, menuID), "values of the surviving option stay when none are supplied")
}

func TestOptionAdapter_EmptyDeletesAll(t *testing.T) {
	db, menuID := setupDB(t)
	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{{OptionValueID: 10}}},
		{OptionID: 2},
	})

	res := reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{})

	assert.Empty(t, res.Kept)
	assert.Equal(t, int64(2), res.Deleted)
	assert.Empty(t, optionIDs(t, db, menuID))
	assert.Equal(t, int64(0), countValues(t, db, menuID))
}

func TestOptionAdapter_ScopedToMenu(t *testing.T) {
	db, menuID := setupDB(t)
	other := models.Menu{Name: "Pasta", Status: true}
	require.NoError(t, db.Create(&other).Error)

	reconcileOptions(t, db, other.ID, []models.MenuOptionDescriptor{{OptionID: 1, Values: []models.MenuOptionValueDescriptor{{OptionValueID: 10}}}})
	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{})

	assert.Equal(t, []uint{1}, optionIDs(t, db, other.ID))
	assert.Equal(t, int64(1), countValues(t, db, other.ID))
}

func TestValueAdapter_MatchAndSweep(t *testing.T) {
	db, menuID := setupDB(t)
	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{{OptionValueID: 10, NewPrice: 1}, {OptionValueID: 11, NewPrice: 2}}},
	})

	var before []models.MenuOptionValue
	require.NoError(t, db.Where("menu_id = ?", menuID).Order("option_value_id").Find(&before).Error)
	require.Len(t, before, 2)

	// Exact id match updates, fallback on option_value_id keeps the row, 11 is swept, 12 is new.
	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{
			{ID: before[0].ID, OptionValueID: 10, NewPrice: 3},
			{OptionValueID: 12, Quantity: 4},
			{NewPrice: 9}, // missing option_value_id
		}},
	})

	var after []models.MenuOptionValue
	require.NoError(t, db.Where("menu_id = ?", menuID).Order("option_value_id").Find(&after).Error)
	require.Len(t, after, 2)
	assert.Equal(t, before[0].ID, after[0].ID)
	assert.Equal(t, 3.0, after[0].NewPrice)
	assert.Equal(t, uint(12), after[1].OptionValueID)
	assert.Equal(t, 4, after[1].Quantity)
	assert.Equal(t, uint(1), after[1].OptionID)
	assert.Equal(t, menuID, after[1].MenuID)
}

func TestValueAdapter_RepointDoesNotCollide(t *testing.T) {
	db, menuID := setupDB(t)
	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{{OptionValueID: 10}, {OptionValueID: 11}}},
	})
	var first models.MenuOptionValue
	require.NoError(t, db.Where("option_value_id = ?", 10).Take(&first).Error)

	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{{ID: first.ID, OptionValueID: 11}}},
	})

	var rows []models.MenuOptionValue
	require.NoError(t, db.Where("menu_id = ?", menuID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, uint(11), rows[0].OptionValueID)
}

func TestValueAdapter_SwapKeepsIDs(t *testing.T) {
	db, menuID := setupDB(t)
	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{{OptionValueID: 5, NewPrice: 1}, {OptionValueID: 7, NewPrice: 2}}},
	})
	var before []models.MenuOptionValue
	require.NoError(t, db.Where("menu_id = ?", menuID).Order("option_value_id").Find(&before).Error)
	require.Len(t, before, 2)
	five, seven := before[0].ID, before[1].ID

	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{
			{ID: five, OptionValueID: 7, NewPrice: 3},
			{ID: seven, OptionValueID: 5, NewPrice: 4},
		}},
	})

	var after []models.MenuOptionValue
	require.NoError(t, db.Where("menu_id = ?", menuID).Order("menu_option_value_id").Find(&after).Error)
	require.Len(t, after, 2)
	assert.Equal(t, five, after[0].ID)
	assert.Equal(t, uint(7), after[0].OptionValueID)
	assert.Equal(t, 3.0, after[0].NewPrice)
	assert.Equal(t, seven, after[1].ID)
	assert.Equal(t, uint(5), after[1].OptionValueID)
	assert.Equal(t, 4.0, after[1].NewPrice)
}

func TestValueAdapter_SameValueByTwoIDsCollapses(t *testing.T) {
	db, menuID := setupDB(t)
	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{{OptionValueID: 5}, {OptionValueID: 7}}},
	})
	var before []models.MenuOptionValue
	require.NoError(t, db.Where("menu_id = ?", menuID).Order("option_value_id").Find(&before).Error)
	require.Len(t, before, 2)
	five, seven := before[0].ID, before[1].ID

	reconcileOptions(t, db, menuID, []models.MenuOptionDescriptor{
		{OptionID: 1, Values: []models.MenuOptionValueDescriptor{
			{ID: seven, OptionValueID: 7, NewPrice: 1},
			{ID: five, OptionValueID: 7, NewPrice: 2},
		}},
	})

	var after []models.MenuOptionValue
	require.NoError(t, db.Where("menu_id = ?", menuID).Find(&after).Error)
	require.Len(t, after, 1)
	assert.Equal(t, seven, after[0].ID)
	assert.Equal(t, uint(7), after[0].OptionValueID)
	assert.Equal(t, 2.0, after[0].NewPrice)
}

func TestCategoryAdapter_FullReplace(t *testing.T) {
	db, menuID := setupDB(t)
	ctx := context.Background()
	adapter := NewCategoryAdapter()

	_, err := reconcile.ReplaceSet(ctx, db, menuID, []uint{1, 2}, adapter)
	require.NoError(t, err)

	res, err := reconcile.ReplaceSet(ctx, db, menuID, []uint{2, 3, 3, 0}, adapter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Added)
	assert.Equal(t, int64(1), res.Deleted)

	var ids []uint
	require.NoError(t, db.Model(&models.MenuCategory{}).Where("menu_id = ?", menuID).Order("category_id").Pluck("category_id", &ids).Error)
	assert.Equal(t, []uint{2, 3}, ids)

	_, err = reconcile.ReplaceSet(ctx, db, menuID, []uint{}, adapter)
	require.NoError(t, err)
	var n int64
	require.NoError(t, db.Model(&models.MenuCategory{}).Where("menu_id = ?", menuID).Count(&n).Error)
	assert.Zero(t, n)
}

func TestSpecialAdapter_UpsertWithoutSweep(t *testing.T) {
	db, menuID := setupDB(t)
	ctx := context.Background()
	adapter := reconcile.Upserter[models.SpecialDescriptor](NewSpecialAdapter())
	zero := uint(0)

	res, err := reconcile.ReconcileOne(ctx, db, menuID, &models.SpecialDescriptor{
		SpecialID: &zero, StartDate: "2024-01-01", EndDate: "2024-01-31", SpecialPrice: 5, Status: true,
	}, adapter)
	require.NoError(t, err)
	require.Len(t, res.Kept, 1)
	specialID := res.Kept[0]

	t.Run("Nil descriptor leaves it", func(t *testing.T) {
		_, err := reconcile.ReconcileOne[models.SpecialDescriptor](ctx, db, menuID, nil, adapter)
		require.NoError(t, err)
		var n int64
		db.Model(&models.Special{}).Where("menu_id = ?", menuID).Count(&n)
		assert.Equal(t, int64(1), n)
	})

	t.Run("Empty descriptor leaves it", func(t *testing.T) {
		res, err := reconcile.ReconcileOne(ctx, db, menuID, &models.SpecialDescriptor{}, adapter)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Skipped)
		var sp models.Special
		require.NoError(t, db.Where("menu_id = ?", menuID).Take(&sp).Error)
		assert.Equal(t, 5.0, sp.SpecialPrice)
	})

	t.Run("Zero id updates the existing special", func(t *testing.T) {
		res, err := reconcile.ReconcileOne(ctx, db, menuID, &models.SpecialDescriptor{
			SpecialID: &zero, StartDate: "2024-02-01", EndDate: "2024-02-28", SpecialPrice: 4,
		}, adapter)
		require.NoError(t, err)
		assert.Equal(t, []uint{specialID}, res.Kept)

		var rows []models.Special
		require.NoError(t, db.Where("menu_id = ?", menuID).Find(&rows).Error)
		require.Len(t, rows, 1)
		assert.Equal(t, 4.0, rows[0].SpecialPrice)
		assert.Equal(t, "2024-02-01", rows[0].StartDate.Format("2006-01-02"))
	})

	t.Run("Foreign special id is not hijacked", func(t *testing.T) {
		other := models.Menu{Name: "Salad", Status: true}
		require.NoError(t, db.Create(&other).Error)

		res, err := reconcile.ReconcileOne(ctx, db, other.ID, &models.SpecialDescriptor{
			SpecialID: &specialID, StartDate: "2024-03-01", EndDate: "2024-03-31", SpecialPrice: 2,
		}, adapter)
		require.NoError(t, err)
		assert.NotEqual(t, specialID, res.Kept[0])

		var sp models.Special
		require.NoError(t, db.First(&sp, specialID).Error)
		assert.Equal(t, menuID, sp.MenuID)
	})
}
