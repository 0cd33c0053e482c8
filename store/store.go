// Package store is the persistence layer behind the HTTP handlers. The Mongo
// implementation backs the running service; the memory implementation backs
// the handler tests.
package store

import (
	"context"
	"errors"

	"karigar-backend/models"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicateEmail    = errors.New("existing user found with same email")
	ErrDuplicateProposal = errors.New("proposal already sent")
)

type Store interface {
	// Products. CreateProduct assigns the next sequential business id.
	CreateProduct(ctx context.Context, p *models.Product) error
	DeleteProductByID(ctx context.Context, id int) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByInsertion(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int) (*models.Product, error)

	// Users.
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUserCart(ctx context.Context, id string, cart map[string]int) error

	// Works. AddProposal rejects a sender whose email or phone already
	// appears among the work's proposals.
	CreateWork(ctx context.Context, w *models.Work) error
	ListWorksExcluding(ctx context.Context, userID string) ([]models.Work, error)
	ListWorksBy(ctx context.Context, userID string) ([]models.Work, error)
	GetWorkByID(ctx context.Context, id int) (*models.Work, error)
	DeleteWorkByID(ctx context.Context, id int) error
	AddProposal(ctx context.Context, workID int, p models.Proposal) (*models.Work, error)

	// Bookings.
	CreateBooking(ctx context.Context, b *models.Booking) error
	ListBookings(ctx context.Context) ([]models.Booking, error)
}
