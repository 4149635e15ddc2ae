package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Catalog errors
var (
	ErrBikeNotFound        = errors.New("bike not found")
	ErrBikeNotRentable     = errors.New("bike not available for rent")
	ErrItemNotFound        = errors.New("inventory item not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInvalidRentalPeriod = errors.New("invalid rental period")
)

// Order errors
var (
	ErrRentalNotFound      = errors.New("rental not found")
	ErrPurchaseNotFound    = errors.New("purchase not found")
	ErrEmptyCart           = errors.New("purchase has no items")
	ErrDeliveryDateInvalid = errors.New("delivery date must be a business day, today or later")
)

// Repair errors
var (
	ErrRepairNotFound      = errors.New("repair request not found")
	ErrInvalidRepairStatus = errors.New("invalid repair status")
)
