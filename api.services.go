package main

import (
	"context"

	"go.uber.org/zap"
)

// BookServiceProvider sits between the api handlers and the storage.
type BookServiceProvider interface {
	Add(ctx context.Context, book Book) error
	GetOne(ctx context.Context, isbn string) (Book, error)
	Delete(ctx context.Context, isbn string) error
	Update(ctx context.Context, isbn string, fields BookUpdate) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
}

type BookService struct {
	logger  *zap.Logger
	config  *Config
	storage BookStorage
}

func NewBookService(logger *zap.Logger, config *Config, storage BookStorage) BookServiceProvider {
	return &BookService{
		logger:  logger,
		config:  config,
		storage: storage,
	}
}

func (bs *BookService) Add(ctx context.Context, book Book) error {
	return bs.storage.Add(ctx, book)
}

func (bs *BookService) GetOne(ctx context.Context, isbn string) (Book, error) {
	book, err := bs.storage.GetOne(ctx, isbn)
	return book, err
}

func (bs *BookService) Delete(ctx context.Context, isbn string) error {
	return bs.storage.Delete(ctx, isbn)
}

func (bs *BookService) Update(ctx context.Context, isbn string, fields BookUpdate) (Book, error) {
	return bs.storage.Update(ctx, isbn, fields)
}

func (bs *BookService) GetAll(ctx context.Context) ([]Book, error) {
	books, err := bs.storage.GetAll(ctx)
	return books, err
}
