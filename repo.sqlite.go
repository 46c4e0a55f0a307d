package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// booksTableDDL is shared by both drivers: the types involved
// (TEXT / INTEGER) mean the same thing to sqlite and postgres.
const booksTableDDL = `CREATE TABLE IF NOT EXISTS books (
	isbn       TEXT PRIMARY KEY,
	amazon_url TEXT NOT NULL,
	author     TEXT NOT NULL,
	language   TEXT NOT NULL,
	pages      INTEGER NOT NULL,
	publisher  TEXT NOT NULL,
	title      TEXT NOT NULL,
	year       INTEGER NOT NULL
)`

// GetSQLiteClient opens the sqlite database file, enables WAL mode and
// ensures the books table exists. It provides a ready to use client.
func GetSQLiteClient(config *Config) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(config.Database.SQLite.FilePath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create the database folder: %v", err)
	}
	db, err := sql.Open("sqlite3", config.Database.SQLite.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open the database: %v", err)
	}
	if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %v", err)
	}
	if _, err = db.Exec(booksTableDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set up books table: %v", err)
	}
	return db, nil
}

// NewSQLiteBookStorage provides an instance of sqlite-based book storage.
func NewSQLiteBookStorage(logger *zap.Logger, db *sql.DB) BookStorage {
	return &sqlBookStorage{
		logger:            logger,
		db:                db,
		driver:            DriverSQLite,
		isUniqueViolation: isSQLiteUniqueViolation,
	}
}

// isSQLiteUniqueViolation reports whether the error is a primary key
// or unique constraint failure raised by the sqlite driver.
func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
