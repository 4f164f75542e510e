// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either MySQL (production) or SQLite (local runs and tests)
// based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and pings the database
// before returning. SQLite is limited to one open connection.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table. The integrity feature
// compares them with the columns declared on the menu models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "menus")
package database
