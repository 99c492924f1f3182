package wfc

import (
	"errors"
	"fmt"
)

var (
	ErrContradiction    = errors.New("wfc: contradiction - no valid tiles for cell")
	ErrInvalidDirection = errors.New("wfc: invalid direction")
	ErrInvalidPattern   = errors.New("wfc: invalid pattern")
	ErrInvalidSize      = errors.New("wfc: invalid grid size")
)

// Contradiction identifies a cell whose domain was reduced to nothing.
type Contradiction struct {
	X, Y int
}

// Error implements the error interface.
func (c Contradiction) Error() string {
	return fmt.Sprintf("%s at (%d, %d)", ErrContradiction, c.X, c.Y)
}

// Unwrap lets errors.Is match ErrContradiction.
func (c Contradiction) Unwrap() error { return ErrContradiction }
