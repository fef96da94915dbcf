// Package store implements the record store backing the API: keyed
// per-entity collections with auto-incrementing ids, the per-user balance
// snapshot that transaction mutations keep in sync, and the derived read
// views used by the dashboard.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/renancoelho1710/organizofinanceiro/internal/models"

	"gorm.io/gorm"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Store wraps the database with per-user write serialization. Two concurrent
// requests mutating the same user's transactions would otherwise race on the
// balance snapshot (read-modify-write); the lock guarantees at most one
// writer per user at a time.
type Store struct {
	db *gorm.DB

	mu        sync.Mutex
	userLocks map[uint]*sync.Mutex
}

// New creates a Store over an initialized database.
func New(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		userLocks: make(map[uint]*sync.Mutex),
	}
}

// DB exposes the underlying handle for read-only middleware (audit log).
func (s *Store) DB() *gorm.DB {
	return s.db
}

// userLock returns the mutex serializing writes for one user.
func (s *Store) userLock(userID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.userLocks[userID] = l
	}
	return l
}

// ---------- users ----------

func (s *Store) CreateUser(u *models.User) error {
	if err := s.db.Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *Store) GetUser(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("LOWER(username) = LOWER(?)", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
