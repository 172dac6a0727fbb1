package customer

import (
	"strings"
	"time"

	"hotel-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyUserID = errs.InvalidRequest("user id is required")

	ErrCustomerNotFound = errs.NotFound("customer not found")
)

// Customer is the directory record a reservation is billed to. UserID links it
// to the account that booked, when there is one.
type Customer struct {
	id        uuid.UUID
	userID    *string
	fullName  string
	email     string
	phone     string
	createdAt time.Time
}

// NewCustomerForUser provisions a directory entry on a user's first booking.
func NewCustomerForUser(userID string, now time.Time) (*Customer, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	return &Customer{
		id:        uuid.New(),
		userID:    &userID,
		fullName:  "Guest " + userID,
		createdAt: now,
	}, nil
}

func ReconstructCustomer(id uuid.UUID, userID *string, fullName, email, phone string, createdAt time.Time) *Customer {
	return &Customer{
		id:        id,
		userID:    userID,
		fullName:  fullName,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) UserID() *string      { return c.userID }
func (c *Customer) FullName() string     { return c.fullName }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
