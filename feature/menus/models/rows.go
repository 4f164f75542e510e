package models

// View selects the projection of a filter query.
type View string

const (
	// ViewAdmin exposes stock and status fields and honors search and status filters.
	ViewAdmin View = "admin"
	// ViewPublic exposes customer-facing fields of enabled menus only.
	ViewPublic View = "public"
)

// MenuRow is a projected menu with its availability flags evaluated at
// request time. Admin-only fields are nil in the public view.
type MenuRow struct {
	ID           uint     `json:"menu_id"`
	Name         string   `json:"menu_name"`
	Description  string   `json:"menu_description"`
	Price        float64  `json:"menu_price"`
	Photo        string   `json:"menu_photo"`
	MinimumQty   int      `json:"minimum_qty"`
	Priority     int      `json:"menu_priority"`
	Categories   []string `json:"categories"`
	SpecialPrice *float64 `json:"special_price,omitempty"`
	MealtimeID   *uint    `json:"mealtime_id,omitempty"`
	MealtimeName string   `json:"mealtime_name,omitempty"`
	IsSpecial    bool     `json:"is_special"`
	IsMealtime   bool     `json:"is_mealtime"`

	StockQty      *int  `json:"stock_qty,omitempty"`
	SubtractStock *bool `json:"subtract_stock,omitempty"`
	Status        *bool `json:"menu_status,omitempty"`
}

// Page is one page of a listing.
type Page[T any] struct {
	Items     []T   `json:"items"`
	Total     int64 `json:"total"`
	Page      int   `json:"page"`
	PageLimit int   `json:"page_limit"`
}

// Suggestion is an auto-complete entry.
type Suggestion struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

// Availability reports whether a menu's windows are active.
type Availability struct {
	MenuID     uint   `json:"menu_id"`
	IsSpecial  bool   `json:"is_special"`
	IsMealtime bool   `json:"is_mealtime"`
	CheckedAt  string `json:"checked_at"`
}
