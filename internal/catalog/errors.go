package catalog

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors surfaced to the transport layer. Handlers map these to
// status codes; anything else is a storage-level 500.
var (
	// ErrNotFound means an id (or slug) does not resolve to a row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateTitle means a game with the same title already exists.
	ErrDuplicateTitle = errors.New("title already exists")

	// ErrNameExists means a category/tag name is already taken.
	ErrNameExists = errors.New("name already exists")

	// ErrPositionTaken means another featured slot occupies the position.
	ErrPositionTaken = errors.New("position is already taken")

	// ErrMissingFile means a required upload (icon or archive) was absent.
	ErrMissingFile = errors.New("required file is missing")

	// ErrValidation covers malformed input: empty required fields, bad
	// color format, non-positive positions.
	ErrValidation = errors.New("validation failed")
)

// translateDup maps the database unique-index violation onto the given
// sentinel. The pre-check-then-insert pattern has a benign race window; the
// index is the authoritative guard and its violation must not surface as a
// generic 500.
func translateDup(err, sentinel error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return sentinel
	}
	return err
}

// notFound maps gorm's record-not-found onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
