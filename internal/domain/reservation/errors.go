package reservation

import "hotel-backoffice/internal/pkg/errs"

var (
	ErrInvalidDateRange       = errs.InvalidRequest("check-out date must be after the check-in date")
	ErrCheckInInPast          = errs.InvalidRequest("check-in date cannot be in the past")
	ErrNoAdults               = errs.InvalidRequest("at least one adult is required")
	ErrNegativeChildren       = errs.InvalidRequest("number of children cannot be negative")
	ErrCapacityExceeded       = errs.InvalidRequest("number of guests exceeds room capacity")
	ErrRoomAlreadyBooked      = errs.InvalidRequest("room already booked for the selected dates")
	ErrSpecialRequestsTooLong = errs.InvalidRequest("special requests are too long")
	ErrNegativeRate           = errs.InvalidRequest("nightly rate cannot be negative")
	ErrNegativeDiscount       = errs.InvalidRequest("discount cannot be negative")
	ErrInvalidPaymentMethod   = errs.InvalidRequest("invalid payment method")
	ErrTransactionIDRequired  = errs.InvalidRequest("transaction id is required")

	ErrModificationWindowClosed = errs.InvalidRequest("reservation can only be modified more than 24 hours before check-in")
	ErrNotModifiable            = errs.InvalidRequest("reservation can no longer be modified")
	ErrNotCancellable           = errs.InvalidRequest("cannot cancel reservation in current status")
	ErrPaymentOnCancelled       = errs.InvalidRequest("cannot confirm payment for a cancelled reservation")
	ErrPaymentOnClosed          = errs.InvalidRequest("cannot confirm payment for a closed reservation")
	ErrInvalidTransition        = errs.InvalidRequest("invalid reservation status transition")

	ErrReservationNotFound = errs.NotFound("reservation not found")
)
