// Package stubserver implements the marketplace auth wire contract
// in-process, for integration tests and local development. It keeps a
// seeded in-memory user table and mints real bearer tokens; it does not
// model any server-side authorization policy.
package stubserver

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/agrimercato/marketplace-client/internal/core/domain"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// SeedUser pairs a user record with its clear-text password; the hash is
// computed when the store is built.
type SeedUser struct {
	User     domain.User
	Password string
}

type userRecord struct {
	user         domain.User
	passwordHash []byte
}

// UserStore is the stub's in-memory account table.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[int]*userRecord
	byEmail map[string]*userRecord
	nextID  int
}

// NewUserStore builds a store from seed accounts. Seeding panics on a
// bad seed; the stub is a fixture, not a production path.
func NewUserStore(seed []SeedUser) *UserStore {
	s := &UserStore{
		byID:    make(map[int]*userRecord),
		byEmail: make(map[string]*userRecord),
		nextID:  1,
	}
	for _, su := range seed {
		if _, err := s.Create(su.User, su.Password); err != nil {
			panic("stubserver: seed: " + err.Error())
		}
	}
	return s
}

// DefaultSeed returns one active account per role, password "password"
// for all of them.
func DefaultSeed() []SeedUser {
	users := []struct {
		email string
		first string
		last  string
		role  domain.Role
	}{
		{"admin@mercato.local", "Ada", "Amministrata", domain.RoleAdmin},
		{"farmer@mercato.local", "Franco", "Campi", domain.RoleFarmer},
		{"consumer@mercato.local", "Carla", "Compra", domain.RoleConsumer},
		{"restaurant@mercato.local", "Rita", "Ristori", domain.RoleRestaurantOwner},
		{"workshop@mercato.local", "Walter", "Corsi", domain.RoleWorkshopHost},
		{"events@mercato.local", "Elena", "Fiere", domain.RoleEventOrganizer},
	}

	seed := make([]SeedUser, 0, len(users))
	for _, u := range users {
		seed = append(seed, SeedUser{
			Password: "password",
			User: domain.User{
				Email:     u.email,
				FirstName: u.first,
				LastName:  u.last,
				IsActive:  true,
				RoleName:  u.role,
				Language:  domain.DefaultLanguage,
			},
		})
	}
	return seed
}

// Create adds an account, hashing the password. The ID is assigned here.
func (s *UserStore) Create(user domain.User, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return nil, ErrUserExists
	}

	user.ID = s.nextID
	s.nextID++
	if !user.Language.Valid() {
		user.Language = domain.DefaultLanguage
	}

	rec := &userRecord{user: user, passwordHash: hash}
	s.byID[user.ID] = rec
	s.byEmail[user.Email] = rec

	clone := user
	return &clone, nil
}

// Authenticate verifies credentials and returns the matching user.
// Unknown emails, wrong passwords, and inactive accounts all map to
// domain.ErrInvalidCredentials so the response never leaks which check
// failed.
func (s *UserStore) Authenticate(email, password string) (*domain.User, error) {
	s.mu.RLock()
	rec, ok := s.byEmail[email]
	s.mu.RUnlock()

	if !ok || !rec.user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	clone := rec.user
	return &clone, nil
}

// FindByID returns the user with the given id.
func (s *UserStore) FindByID(id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := rec.user
	return &clone, nil
}

// SetLanguage updates the stored language preference.
func (s *UserStore) SetLanguage(id int, lang domain.Language) error {
	if !lang.Valid() {
		return domain.ErrInvalidLanguage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	rec.user.Language = lang
	return nil
}
