package appointment

import "errors"

var (
	// ErrSlotUnavailable means the requested time is not a free slot on the
	// doctor's grid.
	ErrSlotUnavailable = errors.New("requested slot is not available")
	// ErrSlotTaken means another booking won the slot between the free-slot
	// read and the insert.
	ErrSlotTaken = errors.New("slot was just booked by someone else")
	// ErrNotFound means the appointment does not exist.
	ErrNotFound = errors.New("appointment not found")
	// ErrInvalidTransition means the requested status change is not allowed
	// for the acting role or current state.
	ErrInvalidTransition = errors.New("status transition not allowed")
)
