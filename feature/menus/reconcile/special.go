package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"menu-manager/feature/menus/models"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// SpecialAdapter upserts the one-to-one special of a menu.
type SpecialAdapter struct{}

// NewSpecialAdapter creates a new special adapter.
func NewSpecialAdapter() *SpecialAdapter {
	return &SpecialAdapter{}
}

// Name returns the collection name.
func (a *SpecialAdapter) Name() string {
	return "menus_specials"
}

// Upsert matches on special_id within the menu, then on the menu's existing
// special, and inserts otherwise.
func (a *SpecialAdapter) Upsert(ctx context.Context, tx *gorm.DB, menuID uint, d models.SpecialDescriptor) (uint, error) {
	start, err := time.Parse(dateLayout, d.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse(dateLayout, d.EndDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end_date: %w", err)
	}

	db := tx.WithContext(ctx)

	var row models.Special
	err = gorm.ErrRecordNotFound
	if d.SpecialID != nil && *d.SpecialID != 0 {
		err = db.Where("special_id = ? AND menu_id = ?", *d.SpecialID, menuID).Take(&row).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Where("menu_id = ?", menuID).Take(&row).Error
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = models.Special{MenuID: menuID}
	case err != nil:
		return 0, fmt.Errorf("failed to look up special: %w", err)
	}

	row.StartDate = start
	row.EndDate = end
	row.SpecialPrice = d.SpecialPrice
	row.Status = d.Status

	if err := db.Save(&row).Error; err != nil {
		return 0, fmt.Errorf("failed to save special: %w", err)
	}
	return row.ID, nil
}
