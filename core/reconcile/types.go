package reconcile

import "errors"

// ErrNoParent is returned when a pass is requested for a parent that has not
// been persisted yet (id zero). Nothing is written.
var ErrNoParent = errors.New("reconcile: parent not found")

// Result summarizes a single reconciliation pass over one collection.
type Result struct {
	// Collection is the adapter name (e.g., "menu_options").
	Collection string `json:"collection"`

	// Kept holds the ids of the rows that survived the pass, in upsert order.
	Kept []uint `json:"kept"`

	// Skipped counts descriptors dropped by the filtering step.
	Skipped int `json:"skipped"`

	// Added counts new memberships inserted by ReplaceSet.
	Added int64 `json:"added,omitempty"`

	// Deleted counts rows removed by the sweep.
	Deleted int64 `json:"deleted"`

	// CascadeDeleted counts grandchildren removed by the cascade step.
	CascadeDeleted int64 `json:"cascade_deleted,omitempty"`
}

// Action labels used by the rows counter.
const (
	ActionKept           = "kept"
	ActionSkipped        = "skipped"
	ActionAdded          = "added"
	ActionDeleted        = "deleted"
	ActionCascadeDeleted = "cascade_deleted"
)
