package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is authenticated but lacks the role
// required for the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrNoStock indicates a sell attempt against a product that is missing or has
// zero remaining quantity.
var ErrNoStock = errors.New("product not found or out of stock")
