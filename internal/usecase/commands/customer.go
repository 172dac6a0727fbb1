package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-backoffice/internal/domain/customer"
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

// resolveCustomer is the find-or-create step against the customer directory.
// An explicit customer id must exist; otherwise the booking user's customer is
// looked up and provisioned on first use.
func resolveCustomer(ctx context.Context, tx shared.Tx, customerID *uuid.UUID, userID string, now time.Time) (uuid.UUID, error) {
	if customerID != nil {
		c, err := tx.Customers().FindByID(ctx, *customerID)
		if err != nil {
			return uuid.Nil, translate(err, customer.ErrCustomerNotFound, "failed to load customer")
		}
		return c.ID(), nil
	}
	if userID == "" {
		return uuid.Nil, ErrCustomerRequired
	}

	c, err := tx.Customers().FindByUserID(ctx, userID)
	if err == nil {
		return c.ID(), nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, translate(err, nil, "failed to look up customer")
	}

	c, err = customer.NewCustomerForUser(userID, now)
	if err != nil {
		return uuid.Nil, err
	}
	if err := tx.Customers().Create(ctx, c); err != nil {
		return uuid.Nil, translate(err, nil, "failed to provision customer")
	}
	slog.InfoContext(ctx, "customer provisioned", "customer_id", c.ID(), "user_id", userID)
	return c.ID(), nil
}
