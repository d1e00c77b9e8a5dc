// Package database provides SQLite connection management for Slate Logic Core.
//
// This package manages:
//   - Opening the SQLite database with WAL mode and busy timeout pragmas
//   - Running embedded schema migrations in version order
//   - Health checks and connection pool statistics
//
// SQLite is used for the automation process store. The device catalogue
// itself is deliberately not persisted here: it is rebuilt at runtime
// from gateway discovery snapshots.
//
// # Migrations
//
// Migration files are embedded by the top-level migrations package and
// follow the naming scheme:
//
//	YYYYMMDD_HHMMSS_description.up.sql
//	YYYYMMDD_HHMMSS_description.down.sql
//
// Each migration runs in its own transaction; a failed migration is
// rolled back and halts the batch.
//
// # Usage
//
//	db, err := database.Open(ctx, database.Config{Path: "./data/slatelogic.db", WALMode: true, BusyTimeout: 5})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
package database
