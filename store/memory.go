// memory.go - in-memory implementation of Store, used by the handler tests

package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"karigar-backend/models"
)

var _ Store = (*MemoryStore)(nil)

type MemoryStore struct {
	mu        sync.Mutex
	products  []models.Product
	users     map[string]*models.User
	works     []models.Work
	bookings  []models.Booking
	productID int
	workID    int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: map[string]*models.User{}}
}

// ----- Products -----

func (s *MemoryStore) CreateProduct(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productID++
	p.ID = s.productID
	p.OID = primitive.NewObjectID()
	p.Date = time.Now()
	p.Available = true
	s.products = append(s.products, *p)
	return nil
}

func (s *MemoryStore) DeleteProductByID(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Product{}, s.products...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s *MemoryStore) ListProductsByInsertion(ctx context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Product{}, s.products...), nil
}

func (s *MemoryStore) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// ----- Users -----

func (s *MemoryStore) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	u.ID = primitive.NewObjectID()
	u.Date = time.Now()
	cp := *u
	cp.CartData = copyCart(u.CartData)
	s.users[u.ID.Hex()] = &cp
	return nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(u), nil
}

func (s *MemoryStore) UpdateUserCart(ctx context.Context, id string, cart map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.CartData = copyCart(cart)
	return nil
}

// ----- Works -----

func (s *MemoryStore) CreateWork(ctx context.Context, w *models.Work) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workID++
	w.ID = s.workID
	w.OID = primitive.NewObjectID()
	w.Date = time.Now()
	if w.Proposals == nil {
		w.Proposals = []models.Proposal{}
	}
	s.works = append(s.works, *w)
	return nil
}

func (s *MemoryStore) ListWorksExcluding(ctx context.Context, userID string) ([]models.Work, error) {
	return s.filterWorks(func(w models.Work) bool { return w.PostedBy != userID }), nil
}

func (s *MemoryStore) ListWorksBy(ctx context.Context, userID string) ([]models.Work, error) {
	return s.filterWorks(func(w models.Work) bool { return w.PostedBy == userID }), nil
}

func (s *MemoryStore) filterWorks(keep func(models.Work) bool) []models.Work {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Work{}
	for _, w := range s.works {
		if keep(w) {
			out = append(out, copyWork(w))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (s *MemoryStore) GetWorkByID(ctx context.Context, id int) (*models.Work, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.works {
		if w.ID == id {
			out := copyWork(w)
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) DeleteWorkByID(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.works {
		if w.ID == id {
			s.works = append(s.works[:i], s.works[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) AddProposal(ctx context.Context, workID int, p models.Proposal) (*models.Work, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.works {
		if w.ID != workID {
			continue
		}
		for _, existing := range w.Proposals {
			if existing.SenderEmail == p.SenderEmail || existing.SenderPhone == p.SenderPhone {
				return nil, ErrDuplicateProposal
			}
		}
		p.Date = time.Now()
		s.works[i].Proposals = append(s.works[i].Proposals, p)
		out := copyWork(s.works[i])
		return &out, nil
	}
	return nil, ErrNotFound
}

// ----- Bookings -----

func (s *MemoryStore) CreateBooking(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = primitive.NewObjectID()
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *MemoryStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Booking{}, s.bookings...), nil
}

func copyUser(u *models.User) *models.User {
	cp := *u
	cp.CartData = copyCart(u.CartData)
	return &cp
}

func copyCart(cart map[string]int) map[string]int {
	out := make(map[string]int, len(cart))
	for k, v := range cart {
		out[k] = v
	}
	return out
}

func copyWork(w models.Work) models.Work {
	cp := w
	cp.Proposals = append([]models.Proposal{}, w.Proposals...)
	return cp
}
