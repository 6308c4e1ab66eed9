package items

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("item not found")
	ErrInvalidTarget         = errors.New("target is not a folder")
	ErrCyclicMove            = errors.New("cannot move a folder into itself or its descendant")
	ErrEmptyName             = errors.New("name is empty")
	ErrForbiddenRootDeletion = errors.New("root folder can not be deleted")
	ErrInvalidSize           = errors.New("size can not be negative")
	ErrCorruptTree           = errors.New("item tree is corrupt")
)

// OpError records a rejected store operation and the item it was about.
type OpError struct {
	Op  string
	ID  string
	Err error
}

func (e *OpError) Error() string {
	if e.ID == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func opError(op, id string, err error) error {
	return &OpError{Op: op, ID: id, Err: err}
}
