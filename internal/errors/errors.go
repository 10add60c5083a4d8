package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

// EmptyCartError means there was nothing to check out: no client item
// list and no (or an empty) persisted cart.
type EmptyCartError struct{}

func (e *EmptyCartError) Error() string {
	return "cart is empty"
}

func NewEmptyCartError() *EmptyCartError {
	return &EmptyCartError{}
}

func IsEmptyCartError(err error) bool {
	_, ok := err.(*EmptyCartError)
	return ok
}

// CartInvalidError names the cart line that blocks checkout.
type CartInvalidError struct {
	ProductID   uint
	ProductName string
	Reason      string
}

func (e *CartInvalidError) Error() string {
	return fmt.Sprintf("cart invalid: product %q: %s", e.ProductName, e.Reason)
}

func NewCartInvalidError(productID uint, productName, reason string) *CartInvalidError {
	return &CartInvalidError{ProductID: productID, ProductName: productName, Reason: reason}
}

func IsCartInvalidError(err error) (*CartInvalidError, bool) {
	if cie, ok := err.(*CartInvalidError); ok {
		return cie, true
	}
	return nil, false
}

// InsufficientStockError carries available vs requested so the
// storefront can prompt the customer to reduce the quantity.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q: available %d, requested %d",
		e.ProductName, e.Available, e.Requested)
}

func NewInsufficientStockError(productID uint, productName string, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID:   productID,
		ProductName: productName,
		Available:   available,
		Requested:   requested,
	}
}

func IsInsufficientStockError(err error) (*InsufficientStockError, bool) {
	if ise, ok := err.(*InsufficientStockError); ok {
		return ise, true
	}
	return nil, false
}

// ProductUnavailableError means the product exists but is inactive.
type ProductUnavailableError struct {
	ProductID   uint
	ProductName string
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("product %q is no longer available", e.ProductName)
}

func NewProductUnavailableError(productID uint, productName string) *ProductUnavailableError {
	return &ProductUnavailableError{ProductID: productID, ProductName: productName}
}

func IsProductUnavailableError(err error) (*ProductUnavailableError, bool) {
	if pue, ok := err.(*ProductUnavailableError); ok {
		return pue, true
	}
	return nil, false
}

// InvalidTransitionError is a workflow error: the requested order
// status change is not in the transition table.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order status transition from %s to %s", e.From, e.To)
}

func NewInvalidTransitionError(from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func IsInvalidTransitionError(err error) (*InvalidTransitionError, bool) {
	if ite, ok := err.(*InvalidTransitionError); ok {
		return ite, true
	}
	return nil, false
}

type NotOwnerError struct {
	Message string
}

func (e *NotOwnerError) Error() string {
	return e.Message
}

func NewNotOwnerError(message string) *NotOwnerError {
	return &NotOwnerError{Message: message}
}

func IsNotOwnerError(err error) (*NotOwnerError, bool) {
	if noe, ok := err.(*NotOwnerError); ok {
		return noe, true
	}
	return nil, false
}

// ReconciliationError is an infrastructure fault during payment
// matching. Callers may retry; business-rule rejections are reported
// as a false result instead.
type ReconciliationError struct {
	Message string
	Cause   error
}

func (e *ReconciliationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ReconciliationError) Unwrap() error {
	return e.Cause
}

func NewReconciliationError(message string, cause error) *ReconciliationError {
	return &ReconciliationError{Message: message, Cause: cause}
}

func IsReconciliationError(err error) (*ReconciliationError, bool) {
	if re, ok := err.(*ReconciliationError); ok {
		return re, true
	}
	return nil, false
}

type DeadlockError struct {
	Message string
}

func (e *DeadlockError) Error() string {
	return e.Message
}

func NewDeadlockError(message string) *DeadlockError {
	return &DeadlockError{Message: message}
}

func IsDeadlockError(err error) (*DeadlockError, bool) {
	if de, ok := err.(*DeadlockError); ok {
		return de, true
	}
	return nil, false
}
