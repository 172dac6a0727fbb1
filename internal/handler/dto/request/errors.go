package request

import "hotel-backoffice/internal/pkg/errs"

var (
	ErrInvalidDate  = errs.InvalidRequest("dates must use the YYYY-MM-DD format")
	ErrInvalidMoney = errs.InvalidRequest("amounts must be decimal strings")
)
