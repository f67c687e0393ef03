// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/defter/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Window restricts listings to calendar dates in [From, To).
// Either bound may be empty to leave that side open.
type Window struct {
	From string
	To   string
}

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateGroup persists a new group. group.ID and CreatedAt are populated
	// by the store when empty.
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	// ListGroupsForUser returns the groups in which userID is linked to a person.
	ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error)
	UpdateGroup(ctx context.Context, group *models.Group) error
	// DeleteGroup removes a group together with its people, purchases and payments.
	DeleteGroup(ctx context.Context, groupID string) error

	AddPerson(ctx context.Context, person *models.Person) error
	GetPerson(ctx context.Context, personID string) (*models.Person, error)
	// ListPeople returns a group's people in the order they were added.
	ListPeople(ctx context.Context, groupID string) ([]*models.Person, error)
	UpdatePerson(ctx context.Context, person *models.Person) error
	// PersonForUser returns the person userID acts as inside groupID.
	PersonForUser(ctx context.Context, groupID, userID string) (*models.Person, error)

	// CreatePurchase persists a purchase and its splits atomically.
	CreatePurchase(ctx context.Context, purchase *models.Purchase) error
	GetPurchase(ctx context.Context, purchaseID string) (*models.Purchase, error)
	// ListPurchases returns a group's purchases, newest date first.
	ListPurchases(ctx context.Context, groupID string, window Window) ([]*models.Purchase, error)
	// UpdatePurchase replaces a purchase's fields and splits.
	UpdatePurchase(ctx context.Context, purchase *models.Purchase) error
	DeletePurchase(ctx context.Context, purchaseID string) error

	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPayment(ctx context.Context, paymentID string) (*models.Payment, error)
	// ListPayments returns a group's payments, newest paid-at first.
	ListPayments(ctx context.Context, groupID string, window Window) ([]*models.Payment, error)
	// ResolvePayment moves a pending payment to status. It returns
	// models.ErrPaymentResolved if the payment was no longer pending.
	ResolvePayment(ctx context.Context, paymentID string, status models.PaymentStatus, userID string, at int64) error
	// CountPending counts pending payments addressed to personID.
	CountPending(ctx context.Context, groupID, personID string) (int, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
