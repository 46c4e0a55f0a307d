package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestSQLiteStorage provides a book storage backed by a throwaway
// sqlite database file removed with the test temp dir.
func newTestSQLiteStorage(t *testing.T) BookStorage {
	t.Helper()
	config := &Config{}
	config.Database.SQLite.FilePath = filepath.Join(t.TempDir(), "books.db")
	db, err := GetSQLiteClient(config)
	require.NoError(t, err, "failed to open the sqlite test database")
	t.Cleanup(func() { db.Close() })
	return NewSQLiteBookStorage(zap.NewNop(), db)
}

func TestSQLiteStorage_AddAndGetOne(t *testing.T) {
	repo := newTestSQLiteStorage(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, validTestBook()))
	book, err := repo.GetOne(ctx, validTestBook().ISBN)
	require.NoError(t, err)
	assert.Equal(t, validTestBook(), book)
}

func TestSQLiteStorage_AddDuplicateISBN(t *testing.T) {
	repo := newTestSQLiteStorage(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, validTestBook()))
	other := validTestBook()
	other.Title = "another title"
	err := repo.Add(ctx, other)
	assert.ErrorIs(t, err, ErrBookExists)

	// the stored record is untouched.
	book, err := repo.GetOne(ctx, validTestBook().ISBN)
	require.NoError(t, err)
	assert.Equal(t, validTestBook().Title, book.Title)
}

func TestSQLiteStorage_GetOneMissing(t *testing.T) {
	repo := newTestSQLiteStorage(t)
	_, err := repo.GetOne(context.Background(), "0000000000")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestSQLiteStorage_Delete(t *testing.T) {
	repo := newTestSQLiteStorage(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, validTestBook()))
	require.NoError(t, repo.Delete(ctx, validTestBook().ISBN))
	_, err := repo.GetOne(ctx, validTestBook().ISBN)
	assert.ErrorIs(t, err, ErrBookNotFound)

	// a second deletion finds nothing.
	assert.ErrorIs(t, repo.Delete(ctx, validTestBook().ISBN), ErrBookNotFound)
}

func TestSQLiteStorage_UpdatePartial(t *testing.T) {
	repo := newTestSQLiteStorage(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, validTestBook()))

	title := "updated title"
	pages := 300
	merged, err := repo.Update(ctx, validTestBook().ISBN, BookUpdate{Title: &title, Pages: &pages})
	require.NoError(t, err)

	expected := validTestBook()
	expected.Title = title
	expected.Pages = pages
	assert.Equal(t, expected, merged)

	// the merged state is what got persisted.
	stored, err := repo.GetOne(ctx, validTestBook().ISBN)
	require.NoError(t, err)
	assert.Equal(t, expected, stored)
}

func TestSQLiteStorage_UpdateNothing(t *testing.T) {
	repo := newTestSQLiteStorage(t)
	ctx := context.Background()
	require.NoError(t, repo.Add(ctx, validTestBook()))

	merged, err := repo.Update(ctx, validTestBook().ISBN, BookUpdate{})
	require.NoError(t, err)
	assert.Equal(t, validTestBook(), merged)
}

func TestSQLiteStorage_UpdateMissing(t *testing.T) {
	repo := newTestSQLiteStorage(t)
	title := "x"
	_, err := repo.Update(context.Background(), "0000000000", BookUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestSQLiteStorage_GetAllOrdered(t *testing.T) {
	repo := newTestSQLiteStorage(t)
	ctx := context.Background()

	books, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	second := validTestBook()
	first := validTestBook()
	first.ISBN = "0131103628"
	first.Title = "The C Programming Language"
	require.NoError(t, repo.Add(ctx, second))
	require.NoError(t, repo.Add(ctx, first))

	books, err = repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, first.ISBN, books[0].ISBN)
	assert.Equal(t, second.ISBN, books[1].ISBN)
}

// TestRebind ensures postgres statements get positional placeholders
// while sqlite statements stay untouched.
func TestRebind(t *testing.T) {
	sqlite := &sqlBookStorage{driver: DriverSQLite}
	postgres := &sqlBookStorage{driver: DriverPostgres}

	query := `UPDATE books SET title = ?, pages = ? WHERE isbn = ?`
	assert.Equal(t, query, sqlite.rebind(query))
	assert.Equal(t, `UPDATE books SET title = $1, pages = $2 WHERE isbn = $3`, postgres.rebind(query))
}

// TestBuildBookAssignments ensures only supplied fields become assignments.
func TestBuildBookAssignments(t *testing.T) {
	assignments, args := buildBookAssignments(BookUpdate{})
	assert.Empty(t, assignments)
	assert.Empty(t, args)

	author := "new author"
	year := 2020
	assignments, args = buildBookAssignments(BookUpdate{Author: &author, Year: &year})
	assert.Equal(t, []string{"author = ?", "year = ?"}, assignments)
	assert.Equal(t, []any{"new author", 2020}, args)
}
