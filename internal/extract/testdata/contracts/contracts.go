// Package contracts holds fixture interfaces for extractor tests.
package contracts

import "context"

// Store is a plain key-value contract.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Close()
}

// Codec is a generic contract; its arity is supplied where the
// double is instantiated.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// notExported must be skipped by extraction.
type notExported interface {
	Hidden()
}

// Plain is not a contract at all.
type Plain struct {
	Field int
}
