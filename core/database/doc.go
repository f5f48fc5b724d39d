// Package database handles database connections and schema inspection.
//
// It wraps GORM to open MySQL or SQLite connections from the application's
// configuration. The registry can keep its files in a table instead of on disk;
// this package only connects and checks that the table has the expected shape.
//
// # Schema Inspection
//
// GetTableColumns lists a table's columns for either dialect, and RequireColumns
// is used at startup to fail fast when the configured registry table is missing
// or lacks the path/content columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	err = database.RequireColumns(db, "registry_files", "path", "content")
package database
