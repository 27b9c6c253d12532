package deal

import "errors"

// Sentinel errors for the deal service layer.
var (
	ErrNotFound          = errors.New("deal not found")
	ErrInvalidTransition = errors.New("invalid stage transition")
	ErrTerminal          = errors.New("deal is already closed")
)
