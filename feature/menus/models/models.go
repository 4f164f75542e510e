package models

import (
	"time"

	"gorm.io/gorm"
)

// Menu is a catalog item. It owns its options, option values, category
// memberships and special, and references one mealtime.
type Menu struct {
	ID            uint      `gorm:"column:menu_id;primaryKey" json:"menu_id"`
	Name          string    `gorm:"column:menu_name;size:255;not null" json:"menu_name" validate:"required,max=255"`
	Description   string    `gorm:"column:menu_description;type:text" json:"menu_description"`
	Price         float64   `gorm:"column:menu_price;type:decimal(15,4);not null" json:"menu_price" validate:"gte=0"`
	Photo         string    `gorm:"column:menu_photo;size:255" json:"menu_photo"`
	StockQty      int       `gorm:"column:stock_qty;not null" json:"stock_qty"`
	MinimumQty    int       `gorm:"column:minimum_qty;not null" json:"minimum_qty" validate:"gte=0"`
	SubtractStock bool      `gorm:"column:subtract_stock;not null" json:"subtract_stock"`
	MealtimeID    *uint     `gorm:"column:mealtime_id" json:"mealtime_id"`
	Status        bool      `gorm:"column:menu_status;not null" json:"menu_status"`
	Priority      int       `gorm:"column:menu_priority;not null" json:"menu_priority"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`

	Mealtime     *Mealtime         `gorm:"foreignKey:MealtimeID;references:ID;constraint:OnDelete:SET NULL" json:"mealtime,omitempty" validate:"-"`
	Special      *Special          `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"special,omitempty" validate:"-"`
	Categories   []Category        `gorm:"many2many:menu_categories" json:"categories,omitempty" validate:"-"`
	Options      []MenuOption      `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"menu_options,omitempty" validate:"-"`
	OptionValues []MenuOptionValue `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (Menu) TableName() string { return "menus" }

// Category groups menus for the front-end listing.
type Category struct {
	ID       uint   `gorm:"column:category_id;primaryKey" json:"category_id"`
	Name     string `gorm:"column:name;size:128;not null" json:"name"`
	Slug     string `gorm:"column:permalink_slug;size:255;index" json:"permalink_slug"`
	Priority int    `gorm:"column:priority;not null" json:"priority"`
	Status   bool   `gorm:"column:status;not null" json:"status"`
}

func (Category) TableName() string { return "categories" }

// MenuCategory is the pure join between menus and categories.
type MenuCategory struct {
	MenuID     uint `gorm:"column:menu_id;primaryKey;autoIncrement:false" json:"menu_id"`
	CategoryID uint `gorm:"column:category_id;primaryKey;autoIncrement:false" json:"category_id"`
}

func (MenuCategory) TableName() string { return "menu_categories" }

// Option is a catalog option group (e.g., "Size") shared across menus.
type Option struct {
	ID          uint   `gorm:"column:option_id;primaryKey" json:"option_id"`
	Name        string `gorm:"column:option_name;size:128;not null" json:"option_name"`
	DisplayType string `gorm:"column:display_type;size:16" json:"display_type"`
	Priority    int    `gorm:"column:priority;not null" json:"priority"`
}

func (Option) TableName() string { return "options" }

// MenuOption attaches a catalog option to a menu.
type MenuOption struct {
	ID             uint  `gorm:"column:menu_option_id;primaryKey" json:"menu_option_id"`
	MenuID         uint  `gorm:"column:menu_id;not null;uniqueIndex:idx_menu_options_menu_option" json:"menu_id"`
	OptionID       uint  `gorm:"column:option_id;not null;uniqueIndex:idx_menu_options_menu_option" json:"option_id"`
	Required       bool  `gorm:"column:required;not null" json:"required"`
	DefaultValueID *uint `gorm:"column:default_value_id" json:"default_value_id"`
	Priority       int   `gorm:"column:priority;not null" json:"priority"`

	// OptionValues is the raw value snapshot submitted with the option.
	OptionValues []MenuOptionValueDescriptor `gorm:"column:option_values;type:text;serializer:json" json:"option_values,omitempty"`

	Option *Option           `gorm:"foreignKey:OptionID;references:ID" json:"option,omitempty"`
	Values []MenuOptionValue `gorm:"foreignKey:MenuOptionID;constraint:OnDelete:CASCADE" json:"menu_option_values,omitempty"`
}

func (MenuOption) TableName() string { return "menu_options" }

// MenuOptionValue is a priced value of a menu option.
type MenuOptionValue struct {
	ID            uint    `gorm:"column:menu_option_value_id;primaryKey" json:"menu_option_value_id"`
	MenuID        uint    `gorm:"column:menu_id;not null;index" json:"menu_id"`
	MenuOptionID  uint    `gorm:"column:menu_option_id;not null;uniqueIndex:idx_menu_option_values_value" json:"menu_option_id"`
	OptionID      uint    `gorm:"column:option_id;not null" json:"option_id"`
	OptionValueID uint    `gorm:"column:option_value_id;not null;uniqueIndex:idx_menu_option_values_value" json:"option_value_id"`
	NewPrice      float64 `gorm:"column:new_price;type:decimal(15,4);not null" json:"new_price"`
	Quantity      int     `gorm:"column:quantity;not null" json:"quantity"`
	SubtractStock bool    `gorm:"column:subtract_stock;not null" json:"subtract_stock"`
	Priority      int     `gorm:"column:priority;not null" json:"priority"`
}

func (MenuOptionValue) TableName() string { return "menu_option_values" }

// Special is the promotional price of a menu within a date window.
type Special struct {
	ID           uint      `gorm:"column:special_id;primaryKey" json:"special_id"`
	MenuID       uint      `gorm:"column:menu_id;not null;uniqueIndex" json:"menu_id"`
	StartDate    time.Time `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate      time.Time `gorm:"column:end_date;type:date" json:"end_date"`
	SpecialPrice float64   `gorm:"column:special_price;type:decimal(15,4);not null" json:"special_price"`
	Status       bool      `gorm:"column:special_status;not null" json:"special_status"`
}

func (Special) TableName() string { return "menus_specials" }

// Mealtime is a daily serving window ("HH:MM:SS" wall-clock bounds).
type Mealtime struct {
	ID        uint   `gorm:"column:mealtime_id;primaryKey" json:"mealtime_id"`
	Name      string `gorm:"column:mealtime_name;size:128;not null" json:"mealtime_name"`
	StartTime string `gorm:"column:start_time;size:8;not null" json:"start_time"`
	EndTime   string `gorm:"column:end_time;size:8;not null" json:"end_time"`
	Status    bool   `gorm:"column:mealtime_status;not null" json:"mealtime_status"`
}

func (Mealtime) TableName() string { return "mealtimes" }

// All returns every model in migration order.
func All() []any {
	return []any{
		&Mealtime{},
		&Category{},
		&Option{},
		&Menu{},
		&MenuCategory{},
		&MenuOption{},
		&MenuOptionValue{},
		&Special{},
	}
}

// Setup registers the custom join table on db. It must run before the
// Categories association is preloaded or migrated.
func Setup(db *gorm.DB) error {
	return db.SetupJoinTable(&Menu{}, "Categories", &MenuCategory{})
}

// Migrate creates or updates the menu schema.
func Migrate(db *gorm.DB) error {
	if err := Setup(db); err != nil {
		return err
	}
	return db.AutoMigrate(All()...)
}
