// Package repository implements raw-SQL persistence over pgx. Sentinel
// errors let the usecase layer distinguish conflict outcomes that are
// only detectable inside a transaction from plain persistence failures.
package repository

import "errors"

// ErrSlotTaken is returned when the transactional overlap re-check
// finds a competing booking for the same walker and time range.
var ErrSlotTaken = errors.New("slot already booked")

// ErrInsufficientStock is returned when a conditional stock decrement
// affects no rows because the remaining stock is below the requested
// quantity.
var ErrInsufficientStock = errors.New("insufficient stock")
