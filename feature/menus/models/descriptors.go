package models

// MenuOptionDescriptor is the desired state of one option of a menu.
// A nil Values leaves the option's stored values untouched; an empty one removes them.
type MenuOptionDescriptor struct {
	ID             uint                        `json:"menu_option_id"`
	OptionID       uint                        `json:"option_id" validate:"required"`
	Required       bool                        `json:"required"`
	DefaultValueID *uint                       `json:"default_value_id"`
	Priority       int                         `json:"priority"`
	Values         []MenuOptionValueDescriptor `json:"menu_option_values"`
}

// MenuOptionValueDescriptor is the desired state of one value of a menu option.
type MenuOptionValueDescriptor struct {
	ID            uint    `json:"menu_option_value_id"`
	OptionValueID uint    `json:"option_value_id" validate:"required"`
	NewPrice      float64 `json:"new_price"`
	Quantity      int     `json:"quantity"`
	SubtractStock bool    `json:"subtract_stock"`
	Priority      int     `json:"priority"`
}

// SpecialDescriptor is the desired state of a menu's special.
// SpecialID must be present; zero targets the menu's existing special or a new one.
type SpecialDescriptor struct {
	SpecialID    *uint   `json:"special_id" validate:"required"`
	StartDate    string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	SpecialPrice float64 `json:"special_price" validate:"gte=0"`
	Status       bool    `json:"special_status"`
}

// Snapshot is the desired state of a menu's nested collections.
// A nil field leaves that collection untouched; an empty slice removes everything.
type Snapshot struct {
	Options    []MenuOptionDescriptor `json:"menu_options"`
	Categories []uint                 `json:"categories"`
	Special    *SpecialDescriptor     `json:"special"`
}
