package repository

import (
	"context"
	"errors"
)

// ErrSlotNotFound is returned by SlotRepo.Read when the key holds no value.
var ErrSlotNotFound = errors.New("slot not found")

// SlotRepo is a named key-value slot holding one serialized document.
// Replace swaps the whole value atomically: a reader sees either the old or
// the new document, never a partial write.
type SlotRepo interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Replace(ctx context.Context, key string, value []byte) error
}
