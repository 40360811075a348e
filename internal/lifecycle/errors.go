package lifecycle

import "errors"

var (
	// ErrRecordNotFound is returned when no record with the given id exists
	ErrRecordNotFound = errors.New("record not found")

	// ErrTrashEntryNotFound is returned when no trash entry with the given id exists
	ErrTrashEntryNotFound = errors.New("trash entry not found")

	// ErrInvalidCategory is returned when a record is added to a category outside the fixed set
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidRecord is returned when a record misses its id
	ErrInvalidRecord = errors.New("invalid record")

	// ErrDuplicateID is returned when a record with the same id is already stored
	ErrDuplicateID = errors.New("record with this id already exists")
)
