package main

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Placeholder styles of the supported sql drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type sqlBookStorage struct {
	logger *zap.Logger
	db     *sql.DB
	driver string
	// isUniqueViolation reports whether an insert failed on the
	// books primary key. Each driver wires its own detection.
	isUniqueViolation func(error) bool
}

// Close shuts down the sql-based book storage.
func (ss *sqlBookStorage) Close() error {
	return ss.db.Close()
}

// rebind rewrites `?` placeholders into the positional `$N` style when
// the underlying driver is postgres. Statements are written once with
// `?` and shared by both drivers.
func (ss *sqlBookStorage) rebind(query string) string {
	if ss.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Add inserts a new book record. A primary key violation on the isbn
// is reported as ErrBookExists.
func (ss *sqlBookStorage) Add(ctx context.Context, book Book) error {
	_, err := ss.db.ExecContext(ctx, ss.rebind(
		`INSERT INTO books (isbn, amazon_url, author, language, pages, publisher, title, year)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		book.ISBN, book.AmazonURL, book.Author, book.Language, book.Pages, book.Publisher, book.Title, book.Year,
	)
	if err != nil && ss.isUniqueViolation(err) {
		return ErrBookExists
	}
	return err
}

// GetOne retrieves a book record based on its isbn.
func (ss *sqlBookStorage) GetOne(ctx context.Context, isbn string) (Book, error) {
	var book Book
	err := ss.db.QueryRowContext(ctx, ss.rebind(
		`SELECT isbn, amazon_url, author, language, pages, publisher, title, year
		 FROM books WHERE isbn = ?`), isbn,
	).Scan(&book.ISBN, &book.AmazonURL, &book.Author, &book.Language, &book.Pages, &book.Publisher, &book.Title, &book.Year)
	if err == sql.ErrNoRows {
		return Book{}, ErrBookNotFound
	}
	return book, err
}

// Delete removes a book record based on its isbn.
func (ss *sqlBookStorage) Delete(ctx context.Context, isbn string) error {
	result, err := ss.db.ExecContext(ctx, ss.rebind(`DELETE FROM books WHERE isbn = ?`), isbn)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrBookNotFound
	}
	return nil
}

// Update applies only the provided fields to an existing book record
// and returns the merged state. The isbn column is never touched.
func (ss *sqlBookStorage) Update(ctx context.Context, isbn string, fields BookUpdate) (Book, error) {
	assignments, args := buildBookAssignments(fields)
	if len(assignments) == 0 {
		// nothing to change, the stored record is the merged state.
		return ss.GetOne(ctx, isbn)
	}

	args = append(args, isbn)
	query := fmt.Sprintf(`UPDATE books SET %s WHERE isbn = ?`, strings.Join(assignments, ", "))
	result, err := ss.db.ExecContext(ctx, ss.rebind(query), args...)
	if err != nil {
		return Book{}, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return Book{}, err
	}
	if n == 0 {
		return Book{}, ErrBookNotFound
	}
	return ss.GetOne(ctx, isbn)
}

// GetAll retrieves all book records ordered by isbn.
func (ss *sqlBookStorage) GetAll(ctx context.Context) ([]Book, error) {
	rows, err := ss.db.QueryContext(ctx,
		`SELECT isbn, amazon_url, author, language, pages, publisher, title, year
		 FROM books ORDER BY isbn`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var book Book
		if err = rows.Scan(&book.ISBN, &book.AmazonURL, &book.Author, &book.Language,
			&book.Pages, &book.Publisher, &book.Title, &book.Year); err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

// buildBookAssignments turns the non-nil fields of a partial update into
// SET clause assignments and their bound arguments, in a fixed order.
func buildBookAssignments(fields BookUpdate) ([]string, []any) {
	var assignments []string
	var args []any
	add := func(column string, value any) {
		assignments = append(assignments, column+" = ?")
		args = append(args, value)
	}
	if fields.AmazonURL != nil {
		add("amazon_url", *fields.AmazonURL)
	}
	if fields.Author != nil {
		add("author", *fields.Author)
	}
	if fields.Language != nil {
		add("language", *fields.Language)
	}
	if fields.Pages != nil {
		add("pages", *fields.Pages)
	}
	if fields.Publisher != nil {
		add("publisher", *fields.Publisher)
	}
	if fields.Title != nil {
		add("title", *fields.Title)
	}
	if fields.Year != nil {
		add("year", *fields.Year)
	}
	return assignments, args
}
