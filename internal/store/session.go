package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
)

var (
	ErrEmptyEmail        = errors.New("email is required")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// AddUser inserts a new user. Emails are unique case-insensitively.
func (s *Store) AddUser(ctx context.Context, u model.User) error {
	return s.mutate(ctx, EventSession, func() error {
		if strings.TrimSpace(u.Email) == "" {
			return ErrEmptyEmail
		}
		for _, existing := range s.users {
			if strings.EqualFold(existing.Email, u.Email) {
				return ErrUserAlreadyExists
			}
		}
		if u.ID == "" {
			u.ID = model.NewID()
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = time.Now().UTC()
		}
		s.users = append(s.users, u)
		return nil
	})
}

// UserByEmail looks a user up case-insensitively.
func (s *Store) UserByEmail(email string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return model.User{}, false
}

func (s *Store) UserByID(id string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// SetSession records the acting user after login/logout.
func (s *Store) SetSession(ctx context.Context, userID string, authenticated bool) error {
	return s.mutate(ctx, EventSession, func() error {
		s.session = model.Session{UserID: userID, IsAuthenticated: authenticated}
		return nil
	})
}

func (s *Store) Session() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *Store) IsAuthenticated() bool {
	return s.Session().IsAuthenticated
}
