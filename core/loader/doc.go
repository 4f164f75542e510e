// Package loader registers self-contained features and mounts the enabled ones on the router.
//
// A feature reports its name and whether its dependencies (database, object storage) are
// configured. The Manager loads enabled features in registration order and skips the rest,
// so the server starts with whatever subset the configuration supports:
//
//	mgr := loader.NewManager()
//	mgr.Register(menus.NewFeature(svc))
//	mgr.Register(integrity.NewFeature(checks))
//	if err := mgr.LoadAll(app); err != nil { ... }
package loader
