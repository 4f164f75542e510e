// Package menus implements the menu catalog: saving a menu together with its
// nested collections, deleting it, adjusting stock, and listing menus with
// their availability evaluated at request time.
//
// # Saving
//
// Service.Save writes the menu row and then reconciles the supplied nested
// collections in one transaction, in this order:
//
//  1. special (single upsert, never swept)
//  2. categories (full set-replace)
//  3. options, with values cascading from the surviving options
//
// A nil collection in the Snapshot is left untouched. Descriptors failing
// validation are skipped and logged at debug level.
//
// # HTTP
//
// Handler exposes the service under /menus (list, admin and public filter,
// auto-complete, CRUD, availability, stock and photo endpoints).
package menus
