// Package reconcile provides a generic mark-and-sweep synchronizer for
// parent-owned child collections.
//
// A caller hands the engine a desired snapshot of a collection. The engine
// makes the persisted rows match it exactly, so saving the same snapshot twice
// is a no-op and no child outlives the pass that dropped it.
//
// # Pass
//
// 1. Filter: descriptors failing struct validation (validate tags) are dropped
// and counted as skipped. See FilterValid.
//
// 2. Upsert: every valid descriptor is written through the adapter on its match
// key. The id of the row that landed joins the kept-set.
//
// 3. Sweep: every row scoped to the parent whose id is not in the kept-set is
// deleted. An empty snapshot deletes all children.
//
// 4. Cascade: adapters that also implement Cascader remove grandchildren whose
// owner did not survive, using the final kept-set of the level above.
//
// # Variants
//
// ReplaceSet replaces a pure membership set (no attributes) in full.
// ReconcileOne upserts a single optional record without sweeping.
//
// # Usage Example
//
//	err := db.Transaction(func(tx *gorm.DB) error {
//	    res, err := reconcile.Reconcile(ctx, tx, menu.ID, options, optionAdapter)
//	    if err != nil {
//	        return err
//	    }
//	    log.Debug("options reconciled", zap.Int("skipped", res.Skipped))
//	    return nil
//	})
//
// The engine never opens transactions itself; callers pass the transaction
// that scopes the whole save so a failure rolls everything back.
package reconcile
