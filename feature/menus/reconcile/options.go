package reconcile

import (
	"context"
	"errors"
	"fmt"

	"menu-manager/core/reconcile"
	"menu-manager/feature/menus/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OptionAdapter reconciles the menu_options of a menu. It implements
// reconcile.Cascader so option values of dropped options are removed.
type OptionAdapter struct {
	logger *zap.Logger
}

// NewOptionAdapter creates a new option adapter.
func NewOptionAdapter(logger *zap.Logger) *OptionAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OptionAdapter{logger: logger}
}

// Name returns the collection name.
func (a *OptionAdapter) Name() string {
	return "menu_options"
}

// Upsert matches on (menu_option_id, option_id), then on the menu's existing
// row for option_id, and inserts otherwise. When the descriptor carries
// values they are reconciled under the landed option.
func (a *OptionAdapter) Upsert(ctx context.Context, tx *gorm.DB, menuID uint, d models.MenuOptionDescriptor) (uint, error) {
	db := tx.WithContext(ctx)

	var row models.MenuOption
	err := gorm.ErrRecordNotFound
	if d.ID != 0 {
		err = db.Where("menu_option_id = ? AND option_id = ? AND menu_id = ?", d.ID, d.OptionID, menuID).Take(&row).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Where("menu_id = ? AND option_id = ?", menuID, d.OptionID).Take(&row).Error
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = models.MenuOption{MenuID: menuID, OptionID: d.OptionID}
	case err != nil:
		return 0, fmt.Errorf("failed to look up menu option: %w", err)
	}

	row.Required = d.Required
	row.DefaultValueID = d.DefaultValueID
	row.Priority = d.Priority
	row.OptionValues = d.Values

	if err := db.Omit(clause.Associations).Save(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to save menu option: %w", err)
	}

	if d.Values != nil {
		res, err := reconcile.Reconcile(ctx, tx, row.ID, d.Values, reconcile.Adapter[models.MenuOptionValueDescriptor](NewValueAdapter(menuID, row.OptionID)))
		if err != nil {
			return 0, err
		}
		if res.Skipped > 0 {
			a.logger.Debug("Skipped invalid option values",
				zap.Uint("menu_id", menuID),
				zap.Uint("menu_option_id", row.ID),
				zap.Int("skipped", res.Skipped))
		}
	}

	return row.ID, nil
}

// Sweep deletes options of the menu that are not in kept.
func (a *OptionAdapter) Sweep(ctx context.Context, tx *gorm.DB, menuID uint, kept []uint) (int64, error) {
	scope := tx.WithContext(ctx).Where("menu_id = ?", menuID)
	res := reconcile.ExceptIDs(scope, "menu_option_id", kept).Delete(&models.MenuOption{})
	return res.RowsAffected, res.Error
}

// SweepChildren deletes option values of the menu whose option did not survive.
func (a *OptionAdapter) SweepChildren(ctx context.Context, tx *gorm.DB, menuID uint, kept []uint) (int64, error) {
	scope := tx.WithContext(ctx).Where("menu_id = ?", menuID)
	res := reconcile.ExceptIDs(scope, "menu_option_id", kept).Delete(&models.MenuOptionValue{})
	return res.RowsAffected, res.Error
}
