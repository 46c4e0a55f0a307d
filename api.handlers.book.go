package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// CreateBook handles the creation of a new book record.
//
//	@Summary	Create a new book
//	@Accept		json
//	@Produce	json
//	@Param		book	body		Book	true	"full book payload"
//	@Success	201		{object}	BookResponse
//	@Failure	400		{object}	APIError
//	@Failure	409		{object}	APIError
//	@Router		/books [post]
func (api *APIHandler) CreateBook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), ContextRequestID)
	payload, err := ReadRequestBody(r)
	if err != nil {
		api.logger.Error("failed to create book", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusBadRequest, "invalid request body")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	if err = api.validator.ValidateCreate(payload); err != nil {
		api.logger.Error("failed to create book", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusBadRequest, violationsOf(err))
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	var book Book
	if err = DecodeBookPayload(payload, &book); err != nil {
		api.logger.Error("failed to create book", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusBadRequest, "invalid request body")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	err = api.bookService.Add(r.Context(), book)
	if errors.Is(err, ErrBookExists) {
		api.logger.Error("book already exists", zap.String("book.isbn", book.ISBN), zap.String("request.id", requestID))
		errResp := NewAPIError(http.StatusConflict, "book already exists")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to create book", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusInternalServerError, "failed to create the book")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to create book", zap.String("book.isbn", book.ISBN), zap.String("request.id", requestID))
	if err = WriteResponse(r.Context(), w, http.StatusCreated, BookResponse{Book: book}); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// GetAllBooks handles the listing of all book records.
//
//	@Summary	Fetch all books
//	@Produce	json
//	@Success	200	{object}	BooksResponse
//	@Router		/books [get]
func (api *APIHandler) GetAllBooks(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), ContextRequestID)
	books, err := api.bookService.GetAll(r.Context())
	if err != nil {
		api.logger.Error("failed to get all books", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusInternalServerError, "failed to get all books")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to get all books", zap.String("request.id", requestID))
	if err = WriteResponse(r.Context(), w, http.StatusOK, BooksResponse{Books: books}); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// GetOneBook handles the retrieval of a single book record by isbn.
//
//	@Summary	Fetch a single book
//	@Produce	json
//	@Param		isbn	path		string	true	"book isbn"
//	@Success	200		{object}	BookResponse
//	@Failure	404		{object}	APIError
//	@Router		/books/{isbn} [get]
func (api *APIHandler) GetOneBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), ContextRequestID)
	isbn := ps.ByName("isbn")
	book, err := api.bookService.GetOne(r.Context(), isbn)
	if errors.Is(err, ErrBookNotFound) {
		api.logger.Error("book does not exist", zap.String("book.isbn", isbn), zap.String("request.id", requestID))
		errResp := NewAPIError(http.StatusNotFound, "book does not exist")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to get book", zap.String("book.isbn", isbn), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusInternalServerError, "failed to get the book")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to get book", zap.String("book.isbn", isbn), zap.String("request.id", requestID))
	if err = WriteResponse(r.Context(), w, http.StatusOK, BookResponse{Book: book}); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// UpdateBook handles the partial update of an existing book record.
//
//	@Summary	Update an existing book
//	@Accept		json
//	@Produce	json
//	@Param		isbn	path		string		true	"book isbn"
//	@Param		fields	body		BookUpdate	true	"partial book payload"
//	@Success	200		{object}	BookResponse
//	@Failure	400		{object}	APIError
//	@Failure	404		{object}	APIError
//	@Router		/books/{isbn} [put]
func (api *APIHandler) UpdateBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), ContextRequestID)
	isbn := ps.ByName("isbn")
	payload, err := ReadRequestBody(r)
	if err != nil {
		api.logger.Error("failed to update book", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusBadRequest, "invalid request body")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	if err = api.validator.ValidateUpdate(payload); err != nil {
		api.logger.Error("failed to update book", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusBadRequest, violationsOf(err))
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	var fields BookUpdate
	if err = DecodeBookUpdatePayload(payload, &fields); err != nil {
		api.logger.Error("failed to update book", zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusBadRequest, "invalid request body")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}

	book, err := api.bookService.Update(r.Context(), isbn, fields)
	if errors.Is(err, ErrBookNotFound) {
		api.logger.Error("book does not exist", zap.String("book.isbn", isbn), zap.String("request.id", requestID))
		errResp := NewAPIError(http.StatusNotFound, "book does not exist")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to update book", zap.String("book.isbn", isbn), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusInternalServerError, "failed to update the book")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to update book", zap.String("book.isbn", isbn), zap.String("request.id", requestID))
	if err = WriteResponse(r.Context(), w, http.StatusOK, BookResponse{Book: book}); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// DeleteOneBook handles the removal of a book record by isbn.
//
//	@Summary	Delete a book
//	@Produce	json
//	@Param		isbn	path		string	true	"book isbn"
//	@Success	200		{object}	MessageResponse
//	@Failure	404		{object}	APIError
//	@Router		/books/{isbn} [delete]
func (api *APIHandler) DeleteOneBook(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requestID := GetValueFromContext(r.Context(), ContextRequestID)
	isbn := ps.ByName("isbn")
	err := api.bookService.Delete(r.Context(), isbn)
	if errors.Is(err, ErrBookNotFound) {
		api.logger.Error("book does not exist", zap.String("book.isbn", isbn), zap.String("request.id", requestID))
		errResp := NewAPIError(http.StatusNotFound, "book does not exist")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	if err != nil {
		api.logger.Error("failed to delete book", zap.String("book.isbn", isbn), zap.String("request.id", requestID), zap.Error(err))
		errResp := NewAPIError(http.StatusInternalServerError, "failed to delete the book")
		if err = WriteErrorResponse(r.Context(), w, errResp); err != nil {
			api.logger.Error("failed to send error response", zap.String("request.id", requestID), zap.Error(err))
		}
		return
	}
	api.logger.Info("success to delete book", zap.String("book.isbn", isbn), zap.String("request.id", requestID))
	if err = WriteResponse(r.Context(), w, http.StatusOK, MessageResponse{Message: "Book deleted"}); err != nil {
		api.logger.Error("failed to send response", zap.String("request.id", requestID), zap.Error(err))
	}
}

// violationsOf extracts the violation list of a validation failure.
func violationsOf(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Violations
	}
	return []string{err.Error()}
}
