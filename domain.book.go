package main

import "context"

// Book represents a book record as persisted in the books table.
// The isbn is the primary key and never changes after creation.
type Book struct {
	ISBN      string `json:"isbn"`
	AmazonURL string `json:"amazon_url"`
	Author    string `json:"author"`
	Language  string `json:"language"`
	Pages     int    `json:"pages"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}

// BookUpdate carries the fields of a partial book update. A nil field
// means the client did not supply it and the stored value is kept.
// The isbn is deliberately absent: it is immutable and travels in the URL.
type BookUpdate struct {
	AmazonURL *string `json:"amazon_url"`
	Author    *string `json:"author"`
	Language  *string `json:"language"`
	Pages     *int    `json:"pages"`
	Publisher *string `json:"publisher"`
	Title     *string `json:"title"`
	Year      *int    `json:"year"`
}

// BookStorage defines possible operations on book records.
type BookStorage interface {
	Add(ctx context.Context, book Book) error
	GetOne(ctx context.Context, isbn string) (Book, error)
	Delete(ctx context.Context, isbn string) error
	Update(ctx context.Context, isbn string, fields BookUpdate) (Book, error)
	GetAll(ctx context.Context) ([]Book, error)
}
