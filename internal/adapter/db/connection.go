package db

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"taskboard/internal/config"
)

// Connect opens the SQLite database at the configured path. Pass ":memory:"
// for an in-process database, as the tests do.
func Connect(conf *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", conf.DBPath)
	if err != nil {
		return nil, err
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY and
	// keeps an in-memory database from being one-per-connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	// Cascade delete from projects to tasks depends on this pragma.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
