// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly
// configure MySQL connections based on the application's configuration. An
// in-memory sqlite driver is supported for local runs and tests.
//
// # Connect
//
// Connect establishes the connection, applies pool settings, and verifies it
// with a ping. Reconciliation transactions each hold one pooled connection for
// their full duration, so the pool size bounds write concurrency.
//
// # Schema Inspection
//
// GetTableColumns retrieves column definitions for a table, used by the
// migrate command's --check mode to report schema drift against the models.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "auctions")
package database
