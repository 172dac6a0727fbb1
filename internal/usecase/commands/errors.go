package commands

import (
	"hotel-backoffice/internal/domain/reservation"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
)

var ErrCustomerRequired = errs.InvalidRequest("customer id or user id is required")

// translate maps a repository failure onto the domain taxonomy. notFound is the
// sentinel for the entity that was being looked up.
func translate(err error, notFound error, msg string) error {
	switch {
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return notFound
	case infra.IsKind(err, infra.KindExclusionViolated):
		return reservation.ErrRoomAlreadyBooked
	default:
		return errs.Internal(err, msg)
	}
}
