package model

import "github.com/pkg/errors"

// Errors mirror the §7 taxonomy entries this package can raise.
var (
	ErrUnknownComponent    = errors.New("model: unknown component")
	ErrDimensionMismatch   = errors.New("model: boundary/incidence or internal/embedding dimension rule violated")
	ErrWrongCollectionItem = errors.New("model: item does not match the collection's item type")
)
