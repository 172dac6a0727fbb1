package billing

import "hotel-backoffice/internal/pkg/errs"

var (
	ErrBillAlreadyPaid        = errs.InvalidRequest("bill is already paid")
	ErrPaymentExceedsBalance  = errs.InvalidRequest("payment amount exceeds remaining balance")
	ErrNonPositivePayment     = errs.InvalidRequest("payment amount must be positive")
	ErrInvalidItemQuantity    = errs.InvalidRequest("item quantity must be at least 1")
	ErrNegativeUnitPrice      = errs.InvalidRequest("item unit price cannot be negative")
	ErrEmptyItemDescription   = errs.InvalidRequest("item description is required")
	ErrItemDescriptionTooLong = errs.InvalidRequest("item description is too long")
	ErrInvalidItemCategory    = errs.InvalidRequest("invalid item category")
	ErrInvalidTaxRate         = errs.InvalidRequest("tax rate must be between 0 and 100")
	ErrNegativeDiscount       = errs.InvalidRequest("discount cannot be negative")

	ErrBillNotFound     = errs.NotFound("bill not found")
	ErrBillItemNotFound = errs.NotFound("bill item not found")
)
