package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestAPIHandler wires an api handler around the given storage mock,
// with the real compiled schemas and predictable clock and ids.
func newTestAPIHandler(t *testing.T, repo BookStorage) *APIHandler {
	t.Helper()
	validator, err := NewBookValidator()
	require.NoError(t, err)
	bs := NewBookService(zap.NewNop(), &Config{}, repo)
	return NewAPIHandler(
		zap.NewNop(),
		&Config{},
		&Statistics{started: NewMockClocker().Now()},
		NewMockClocker(),
		NewMockUIDHandler("abc", true),
		validator,
		bs,
	)
}

// TestStatusHandler ensures api handler can provides its status.
func TestStatusHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	w := httptest.NewRecorder()
	api := newTestAPIHandler(t, &MockBookStorage{})
	api.Status(w, req, httprouter.Params{})
	res := w.Result()
	defer res.Body.Close()
	data, err := io.ReadAll(res.Body)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))
	m := make(map[string]interface{})
	err = json.Unmarshal(data, &m)
	assert.NoError(t, err)

	v, ok := m["status"]
	assert.True(t, ok)
	assert.Equal(t, "up & running since 0 mins", v)

	v, ok = m["message"]
	assert.True(t, ok)
	assert.Equal(t, "Hello. Books store api is available. Enjoy :)", v)
}

// TestCreateBookHandler ensures api handler can create a book.
//
//nolint:funlen
func TestCreateBookHandler(t *testing.T) {
	t.Run("should pass: valid payload", func(t *testing.T) {
		var stored Book
		mockRepo := &MockBookStorage{
			AddFunc: func(ctx context.Context, book Book) error {
				stored = book
				return nil
			},
		}
		api := newTestAPIHandler(t, mockRepo)

		payload, err := json.Marshal(validTestBook())
		assert.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateBook(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Equal(t, "application/json; charset=UTF-8", res.Header.Get("Content-Type"))
		assert.Equal(t, validTestBook(), stored)

		var resp BookResponse
		err = json.Unmarshal(data, &resp)
		assert.NoError(t, err)
		assert.Equal(t, validTestBook(), resp.Book)
	})

	t.Run("should fail: storage insertion failure", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			AddFunc: func(ctx context.Context, book Book) error {
				return errors.New("storage failure")
			},
		}
		api := newTestAPIHandler(t, mockRepo)

		payload, err := json.Marshal(validTestBook())
		assert.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateBook(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		expected := `{"error":{"message":"failed to create the book","status":500}}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: duplicate isbn", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			AddFunc: func(ctx context.Context, book Book) error {
				return ErrBookExists
			},
		}
		api := newTestAPIHandler(t, mockRepo)

		payload, err := json.Marshal(validTestBook())
		assert.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBuffer(payload))
		w := httptest.NewRecorder()
		api.CreateBook(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, res.StatusCode)
		expected := `{"error":{"message":"book already exists","status":409}}`
		assert.JSONEq(t, expected, string(data))
	})

	t.Run("should fail: invalid payload lists all violations", func(t *testing.T) {
		called := false
		mockRepo := &MockBookStorage{
			AddFunc: func(ctx context.Context, book Book) error {
				called = true
				return nil
			},
		}
		api := newTestAPIHandler(t, mockRepo)

		jsonStringPayload := `{"isbn":"1234567890","amazon_url":"nope","author":"a","language":"l","pages":0,"publisher":"p","year":2000,"extra":"x"}`
		req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewBufferString(jsonStringPayload))
		w := httptest.NewRecorder()
		api.CreateBook(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.False(t, called, "storage must not be reached for an invalid payload")
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)

		var errResp APIError
		err = json.Unmarshal(data, &errResp)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, errResp.Error.Status)
		messages, ok := errResp.Error.Message.([]interface{})
		assert.True(t, ok, "validation failures must carry the violations list")
		// missing title + bad uri + pages below one + undeclared property.
		assert.Len(t, messages, 4)
	})

	t.Run("should fail: empty body", func(t *testing.T) {
		api := newTestAPIHandler(t, &MockBookStorage{})
		req := httptest.NewRequest(http.MethodPost, "/books", nil)
		w := httptest.NewRecorder()
		api.CreateBook(w, req, httprouter.Params{})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

// TestGetOneBookHandler ensures fetch by isbn behavior for both outcomes.
func TestGetOneBookHandler(t *testing.T) {
	t.Run("existing book", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, isbn string) (Book, error) {
				return validTestBook(), nil
			},
		}
		api := newTestAPIHandler(t, mockRepo)
		req := httptest.NewRequest(http.MethodGet, "/books/0691161518", nil)
		w := httptest.NewRecorder()
		api.GetOneBook(w, req, httprouter.Params{{Key: "isbn", Value: "0691161518"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		var resp BookResponse
		assert.NoError(t, json.Unmarshal(data, &resp))
		assert.Equal(t, "0691161518", resp.Book.ISBN)
	})

	t.Run("missing book", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			GetOneFunc: func(ctx context.Context, isbn string) (Book, error) {
				return Book{}, ErrBookNotFound
			},
		}
		api := newTestAPIHandler(t, mockRepo)
		req := httptest.NewRequest(http.MethodGet, "/books/0000000000", nil)
		w := httptest.NewRecorder()
		api.GetOneBook(w, req, httprouter.Params{{Key: "isbn", Value: "0000000000"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		expected := `{"error":{"message":"book does not exist","status":404}}`
		assert.JSONEq(t, expected, string(data))
	})
}

// TestGetAllBooksHandler ensures the list endpoint wraps records under `books`.
func TestGetAllBooksHandler(t *testing.T) {
	mockRepo := &MockBookStorage{
		GetAllFunc: func(ctx context.Context) ([]Book, error) {
			return []Book{validTestBook()}, nil
		},
	}
	api := newTestAPIHandler(t, mockRepo)
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	w := httptest.NewRecorder()
	api.GetAllBooks(w, req, httprouter.Params{})
	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	data, err := io.ReadAll(res.Body)
	assert.NoError(t, err)
	var resp BooksResponse
	assert.NoError(t, json.Unmarshal(data, &resp))
	assert.Len(t, resp.Books, 1)
	assert.Equal(t, "0691161518", resp.Books[0].ISBN)
}

// TestUpdateBookHandler ensures partial updates reach the storage with only
// the supplied fields and that failures map to the right status codes.
func TestUpdateBookHandler(t *testing.T) {
	t.Run("partial payload touches only supplied fields", func(t *testing.T) {
		var gotISBN string
		var gotFields BookUpdate
		mockRepo := &MockBookStorage{
			UpdateFunc: func(ctx context.Context, isbn string, fields BookUpdate) (Book, error) {
				gotISBN = isbn
				gotFields = fields
				merged := validTestBook()
				merged.Title = *fields.Title
				return merged, nil
			},
		}
		api := newTestAPIHandler(t, mockRepo)

		req := httptest.NewRequest(http.MethodPut, "/books/0691161518", bytes.NewBufferString(`{"title":"updated title"}`))
		w := httptest.NewRecorder()
		api.UpdateBook(w, req, httprouter.Params{{Key: "isbn", Value: "0691161518"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "0691161518", gotISBN)
		require.NotNil(t, gotFields.Title)
		assert.Equal(t, "updated title", *gotFields.Title)
		assert.Nil(t, gotFields.Author)
		assert.Nil(t, gotFields.Pages)

		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		var resp BookResponse
		assert.NoError(t, json.Unmarshal(data, &resp))
		assert.Equal(t, "updated title", resp.Book.Title)
		assert.Equal(t, "0691161518", resp.Book.ISBN)
	})

	t.Run("isbn in body is rejected", func(t *testing.T) {
		called := false
		mockRepo := &MockBookStorage{
			UpdateFunc: func(ctx context.Context, isbn string, fields BookUpdate) (Book, error) {
				called = true
				return Book{}, nil
			},
		}
		api := newTestAPIHandler(t, mockRepo)
		req := httptest.NewRequest(http.MethodPut, "/books/0691161518", bytes.NewBufferString(`{"isbn":"1234567890"}`))
		w := httptest.NewRecorder()
		api.UpdateBook(w, req, httprouter.Params{{Key: "isbn", Value: "0691161518"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.False(t, called)
	})

	t.Run("missing book", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			UpdateFunc: func(ctx context.Context, isbn string, fields BookUpdate) (Book, error) {
				return Book{}, ErrBookNotFound
			},
		}
		api := newTestAPIHandler(t, mockRepo)
		req := httptest.NewRequest(http.MethodPut, "/books/0000000000", bytes.NewBufferString(`{"title":"x"}`))
		w := httptest.NewRecorder()
		api.UpdateBook(w, req, httprouter.Params{{Key: "isbn", Value: "0000000000"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

// TestDeleteOneBookHandler ensures deletion outcomes and response shape.
func TestDeleteOneBookHandler(t *testing.T) {
	t.Run("existing book", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			DeleteFunc: func(ctx context.Context, isbn string) error {
				return nil
			},
		}
		api := newTestAPIHandler(t, mockRepo)
		req := httptest.NewRequest(http.MethodDelete, "/books/0691161518", nil)
		w := httptest.NewRecorder()
		api.DeleteOneBook(w, req, httprouter.Params{{Key: "isbn", Value: "0691161518"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusOK, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"message":"Book deleted"}`, string(data))
	})

	t.Run("missing book", func(t *testing.T) {
		mockRepo := &MockBookStorage{
			DeleteFunc: func(ctx context.Context, isbn string) error {
				return ErrBookNotFound
			},
		}
		api := newTestAPIHandler(t, mockRepo)
		req := httptest.NewRequest(http.MethodDelete, "/books/0000000000", nil)
		w := httptest.NewRecorder()
		api.DeleteOneBook(w, req, httprouter.Params{{Key: "isbn", Value: "0000000000"}})
		res := w.Result()
		defer res.Body.Close()
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		data, err := io.ReadAll(res.Body)
		assert.NoError(t, err)
		expected := `{"error":{"message":"book does not exist","status":404}}`
		assert.JSONEq(t, expected, string(data))
	})
}
