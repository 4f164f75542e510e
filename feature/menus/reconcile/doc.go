// Package reconcile holds the menu collection adapters for the generic
// reconciliation engine in core/reconcile.
//
//   - OptionAdapter: menu_options, cascading to menu_option_values.
//   - ValueAdapter: menu_option_values of one option.
//   - SpecialAdapter: the single menus_specials row (upsert only).
//   - CategoryAdapter: the menu_categories membership set.
package reconcile
