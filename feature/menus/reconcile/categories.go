package reconcile

import (
	"context"

	"menu-manager/core/reconcile"
	"menu-manager/feature/menus/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryAdapter replaces the category membership of a menu.
type CategoryAdapter struct{}

// NewCategoryAdapter creates a new category adapter.
func NewCategoryAdapter() *CategoryAdapter {
	return &CategoryAdapter{}
}

// Name returns the collection name.
func (a *CategoryAdapter) Name() string {
	return "menu_categories"
}

// Remove deletes memberships whose category is not in keep.
func (a *CategoryAdapter) Remove(ctx context.Context, tx *gorm.DB, menuID uint, keep []uint) (int64, error) {
	scope := tx.WithContext(ctx).Where("menu_id = ?", menuID)
	res := reconcile.ExceptIDs(scope, "category_id", keep).Delete(&models.MenuCategory{})
	return res.RowsAffected, res.Error
}

// Add inserts the memberships that do not exist yet.
func (a *CategoryAdapter) Add(ctx context.Context, tx *gorm.DB, menuID uint, categoryIDs []uint) (int64, error) {
	rows := make([]models.MenuCategory, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		rows = append(rows, models.MenuCategory{MenuID: menuID, CategoryID: id})
	}
	res := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	return res.RowsAffected, res.Error
}
