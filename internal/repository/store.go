package repository

import (
	"context"

	"github.com/cockroachdb/errors"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	ErrIDMismatch    = errors.New("record id does not match path id")
)

// Record is anything keyed by an integer id.
type Record interface {
	RecordID() int
}

// Store holds records of one kind in process memory. Nothing survives a restart.
type Store[T Record] interface {
	List(ctx context.Context) []T
	Get(ctx context.Context, id int) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id int, rec T) (T, error)
	Delete(ctx context.Context, id int) (T, error)
	Count(ctx context.Context) int
}

func notFound(id int) error {
	return errors.Wrapf(ErrNotFound, "id %d", id)
}

func alreadyExists(id int) error {
	return errors.Wrapf(ErrAlreadyExists, "id %d", id)
}

func idMismatch(pathID, bodyID int) error {
	return errors.Wrapf(ErrIDMismatch, "path %d, body %d", pathID, bodyID)
}
