package menus

import "menu-manager/feature/menus/models"

// MenuRequest is the body of create and update calls. Nested collections
// follow Snapshot semantics: omitted leaves them untouched, [] clears them.
type MenuRequest struct {
	Name          string  `json:"menu_name" validate:"required,max=255"`
	Description   string  `json:"menu_description"`
	Price         float64 `json:"menu_price" validate:"gte=0"`
	StockQty      int     `json:"stock_qty"`
	MinimumQty    int     `json:"minimum_qty" validate:"gte=0"`
	SubtractStock bool    `json:"subtract_stock"`
	MealtimeID    *uint   `json:"mealtime_id"`
	Status        bool    `json:"menu_status"`
	Priority      int     `json:"menu_priority"`

	Options    []models.MenuOptionDescriptor `json:"menu_options" validate:"-"`
	Categories []uint                        `json:"categories" validate:"-"`
	Special    *models.SpecialDescriptor     `json:"special" validate:"-"`
}

// Apply copies the scalar fields onto menu.
func (r *MenuRequest) Apply(menu *models.Menu) {
	menu.Name = r.Name
	menu.Description = r.Description
	menu.Price = r.Price
	menu.StockQty = r.StockQty
	menu.MinimumQty = r.MinimumQty
	menu.SubtractStock = r.SubtractStock
	menu.MealtimeID = r.MealtimeID
	menu.Status = r.Status
	menu.Priority = r.Priority
}

// Snapshot returns the nested collections of the request.
func (r *MenuRequest) Snapshot() models.Snapshot {
	return models.Snapshot{
		Options:    r.Options,
		Categories: r.Categories,
		Special:    r.Special,
	}
}

// StockRequest is the body of a stock adjustment.
type StockRequest struct {
	Quantity int    `json:"quantity"`
	Action   string `json:"action" validate:"omitempty,oneof=subtract add"`
}

// StockResponse reports the outcome of a stock adjustment.
type StockResponse struct {
	MenuID   uint `json:"menu_id"`
	Applied  bool `json:"applied"`
	StockQty int  `json:"stock_qty"`
}
