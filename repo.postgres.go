package main

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// pqUniqueViolationCode is the postgres error code for unique_violation.
const pqUniqueViolationCode = "23505"

// GetPostgresClient opens a connection pool to the postgres server,
// verifies connectivity and ensures the books table exists.
func GetPostgresClient(config *Config) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		config.Database.Postgres.Host,
		config.Database.Postgres.Port,
		config.Database.Postgres.User,
		config.Database.Postgres.Password,
		config.Database.Postgres.Name,
		config.Database.Postgres.SSLMode,
		int(config.Database.Postgres.ConnectTimeout.Seconds()),
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open the database: %v", err)
	}
	db.SetMaxOpenConns(config.Database.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(config.Database.Postgres.MaxIdleConns)

	// test connection.
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("test connection failed: %v", err)
	}
	if _, err = db.Exec(booksTableDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set up books table: %v", err)
	}
	return db, nil
}

// NewPostgresBookStorage provides an instance of postgres-based book storage.
func NewPostgresBookStorage(logger *zap.Logger, db *sql.DB) BookStorage {
	return &sqlBookStorage{
		logger:            logger,
		db:                db,
		driver:            DriverPostgres,
		isUniqueViolation: isPostgresUniqueViolation,
	}
}

// isPostgresUniqueViolation reports whether the error is a unique
// constraint failure raised by the postgres driver.
func isPostgresUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolationCode
	}
	return false
}
