package reconcile

import (
	"context"
	"errors"
	"fmt"

	"menu-manager/core/reconcile"
	"menu-manager/feature/menus/models"

	"gorm.io/gorm"
)

// ValueAdapter reconciles the values of a single menu option. The parent id
// passed to its methods is the menu_option_id.
type ValueAdapter struct {
	menuID   uint
	optionID uint
	claimed  map[uint]struct{}
}

// NewValueAdapter creates an adapter for values of the given menu and catalog option.
func NewValueAdapter(menuID, optionID uint) *ValueAdapter {
	return &ValueAdapter{menuID: menuID, optionID: optionID}
}

// Name returns the collection name.
func (a *ValueAdapter) Name() string {
	return "menu_option_values"
}

// Prepare records which existing rows the batch addresses by id and parks
// every such row that is about to change its option value on a value above
// anything in play, so rows in the batch can trade values without colliding.
func (a *ValueAdapter) Prepare(ctx context.Context, tx *gorm.DB, menuOptionID uint, valid []models.MenuOptionValueDescriptor) error {
	db := tx.WithContext(ctx)
	a.claimed = map[uint]struct{}{}

	var rows []models.MenuOptionValue
	if err := db.Where("menu_option_id = ?", menuOptionID).Find(&rows).Error; err != nil {
		return fmt.Errorf("failed to load option values: %w", err)
	}

	current := make(map[uint]uint, len(rows))
	var top uint
	for _, r := range rows {
		current[r.ID] = r.OptionValueID
		top = max(top, r.OptionValueID)
	}
	for _, d := range valid {
		top = max(top, d.OptionValueID)
	}

	for _, d := range valid {
		value, ok := current[d.ID]
		if d.ID == 0 || !ok {
			continue
		}
		if _, dup := a.claimed[d.ID]; dup {
			continue
		}
		a.claimed[d.ID] = struct{}{}
		if value == d.OptionValueID {
			continue
		}
		top++
		err := db.Model(&models.MenuOptionValue{}).Where("menu_option_value_id = ?", d.ID).
			UpdateColumn("option_value_id", top).Error
		if err != nil {
			return fmt.Errorf("failed to park option value %d: %w", d.ID, err)
		}
	}
	return nil
}

// Upsert matches on (menu_option_value_id, menu_option_id), then on
// (menu_option_id, option_value_id), and inserts otherwise.
func (a *ValueAdapter) Upsert(ctx context.Context, tx *gorm.DB, menuOptionID uint, d models.MenuOptionValueDescriptor) (uint, error) {
	db := tx.WithContext(ctx)

	var row models.MenuOptionValue
	err := gorm.ErrRecordNotFound
	if d.ID != 0 {
		err = db.Where("menu_option_value_id = ? AND menu_option_id = ?", d.ID, menuOptionID).Take(&row).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Where("menu_option_id = ? AND option_value_id = ?", menuOptionID, d.OptionValueID).Take(&row).Error
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = models.MenuOptionValue{MenuOptionID: menuOptionID}
	case err != nil:
		return 0, fmt.Errorf("failed to look up option value: %w", err)
	}

	// Re-pointing a matched row at another option value must not collide
	// with a sibling already holding it. A sibling claimed by the batch that
	// already holds the value absorbs this descriptor, like any duplicate
	// match key; the parked row is then swept.
	if row.ID != 0 && row.OptionValueID != d.OptionValueID {
		var holder models.MenuOptionValue
		err := db.Where("menu_option_id = ? AND option_value_id = ? AND menu_option_value_id <> ?", menuOptionID, d.OptionValueID, row.ID).
			Take(&holder).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return 0, fmt.Errorf("failed to look up option value: %w", err)
		default:
			if _, ok := a.claimed[holder.ID]; ok {
				row = holder
				break
			}
			if err := db.Delete(&holder).Error; err != nil {
				return 0, fmt.Errorf("failed to release option value: %w", err)
			}
		}
	}

	row.MenuID = a.menuID
	row.OptionID = a.optionID
	row.OptionValueID = d.OptionValueID
	row.NewPrice = d.NewPrice
	row.Quantity = d.Quantity
	row.SubtractStock = d.SubtractStock
	row.Priority = d.Priority

	if err := db.Save(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to save option value: %w", err)
	}
	return row.ID, nil
}

// Sweep deletes values of the option that are not in kept.
func (a *ValueAdapter) Sweep(ctx context.Context, tx *gorm.DB, menuOptionID uint, kept []uint) (int64, error) {
	scope := tx.WithContext(ctx).Where("menu_option_id = ?", menuOptionID)
	res := reconcile.ExceptIDs(scope, "menu_option_value_id", kept).Delete(&models.MenuOptionValue{})
	return res.RowsAffected, res.Error
}
