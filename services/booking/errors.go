package booking

import "fmt"

// NotFoundError signals a missing or inactive listing, booking, or settlement.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// InvalidDateRangeError signals an unparseable or inverted stay window.
type InvalidDateRangeError struct {
	Message string
}

func (e *InvalidDateRangeError) Error() string {
	return "invalid date range: " + e.Message
}

// EmptyLineItemsError signals a booking request with no rooms.
type EmptyLineItemsError struct{}

func (e *EmptyLineItemsError) Error() string {
	return "at least one room is required"
}

// LineItemNotFoundError names a requested room that does not exist on the listing.
type LineItemNotFoundError struct {
	Ref string
}

func (e *LineItemNotFoundError) Error() string {
	return fmt.Sprintf("room %q not found on listing", e.Ref)
}

// InvalidQuantityError signals a non-positive line item quantity.
type InvalidQuantityError struct {
	Ref      string
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for room %q", e.Quantity, e.Ref)
}

// MissingCustomerInfoError signals an incomplete customer contact snapshot.
type MissingCustomerInfoError struct {
	Field string
}

func (e *MissingCustomerInfoError) Error() string {
	return "customer " + e.Field + " is required"
}

// ValidationError covers remaining bad-shape failures (guest counts, status
// names) that have no more specific type.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RoomUnavailableError signals that the requested quantity exceeds the
// room's remaining units for the stay window.
type RoomUnavailableError struct {
	Ref string
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %q is not available for the requested dates", e.Ref)
}

// UnauthorizedTransitionError signals a caller without the role or ownership
// required for the operation.
type UnauthorizedTransitionError struct {
	Message string
}

func (e *UnauthorizedTransitionError) Error() string {
	return e.Message
}

// InvalidTransitionError signals a target status unreachable from the
// current one.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}

// ConflictError signals a lost optimistic-concurrency race: the booking
// changed while the caller was acting on it.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// PersistenceError wraps storage failures.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
