package stock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"menu-manager/feature/menus/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Direction selects whether an adjustment removes or returns stock.
type Direction string

const (
	// Subtract removes stock (a sale).
	Subtract Direction = "subtract"
	// Add returns stock (a refund or restock).
	Add Direction = "add"
)

// ErrInvalidItem is returned when the item has not been persisted.
var ErrInvalidItem = errors.New("stock: item has no id")

// ParseDirection maps an action name to a Direction. An empty action subtracts.
func ParseDirection(action string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(action))) {
	case "", Subtract:
		return Subtract, nil
	case Add:
		return Add, nil
	default:
		return "", fmt.Errorf("invalid stock action: %s", action)
	}
}

// Ledger applies stock adjustments to menus.
type Ledger struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewLedger creates a new stock ledger.
func NewLedger(db *gorm.DB, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{db: db, logger: logger}
}

// Adjust moves the stock of item by quantity in direction dir.
//
// The change is a single expression update guarded by subtract_stock, so
// concurrent sales never lose updates. The resulting quantity is read back in
// the same transaction into item.StockQty. Stock is not floored at zero.
//
// It returns false without error when the item does not track stock or
// quantity is zero.
func (l *Ledger) Adjust(ctx context.Context, item *models.Menu, quantity int, dir Direction) (bool, error) {
	if item == nil || item.ID == 0 {
		return false, ErrInvalidItem
	}
	if !item.SubtractStock || quantity == 0 {
		adjustmentsTotal.WithLabelValues(resultDeclined).Inc()
		return false, nil
	}

	expr := "stock_qty - ?"
	if dir == Add {
		expr = "stock_qty + ?"
	}

	applied := false
	var qty int
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Menu{}).
			Where("menu_id = ? AND subtract_stock = ?", item.ID, true).
			UpdateColumn("stock_qty", gorm.Expr(expr, quantity))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		applied = true
		return tx.Model(&models.Menu{}).Select("stock_qty").Where("menu_id = ?", item.ID).Row().Scan(&qty)
	})
	if err != nil {
		adjustmentsTotal.WithLabelValues(resultFailed).Inc()
		return false, fmt.Errorf("failed to adjust stock of menu %d: %w", item.ID, err)
	}

	if !applied {
		// The stored row no longer tracks stock (or is gone).
		adjustmentsTotal.WithLabelValues(resultDeclined).Inc()
		l.logger.Debug("Stock adjustment declined by storage", zap.Uint("menu_id", item.ID))
		return false, nil
	}

	item.StockQty = qty
	adjustmentsTotal.WithLabelValues(resultApplied).Inc()
	if qty < 0 {
		l.logger.Warn("Stock below zero", zap.Uint("menu_id", item.ID), zap.Int("stock_qty", qty))
	}
	return true, nil
}
