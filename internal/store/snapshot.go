package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
)

// Snapshot is the full serializable state of the store. It must
// round-trip exactly: decodeSnapshot(encodeSnapshot(s)) == s.
type Snapshot struct {
	Recipes      []model.Recipe           `json:"recipes"`
	Folders      []model.Folder           `json:"folders"`
	ShoppingList []model.ShoppingListItem `json:"shopping_list"`
	MealLog      []model.MealLogEntry     `json:"meal_log"`
	Users        []persistedUser          `json:"users"`
	Session      model.Session            `json:"session"`
}

// persistedUser re-exposes the credential hash that model.User hides
// from API responses; without it login would not survive a restart.
type persistedUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

func encodeSnapshot(snap Snapshot) ([]byte, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

func (s *Store) snapshotLocked() Snapshot {
	users := make([]persistedUser, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, persistedUser{
			ID:           u.ID,
			Email:        u.Email,
			Username:     u.Username,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
		})
	}
	return Snapshot{
		Recipes:      append([]model.Recipe(nil), s.recipes...),
		Folders:      append([]model.Folder(nil), s.folders...),
		ShoppingList: append([]model.ShoppingListItem(nil), s.shopping...),
		MealLog:      append([]model.MealLogEntry(nil), s.mealLog...),
		Users:        users,
		Session:      s.session,
	}
}

func (s *Store) applySnapshotLocked(snap Snapshot) {
	s.recipes = snap.Recipes
	s.folders = snap.Folders
	s.shopping = snap.ShoppingList
	s.mealLog = snap.MealLog
	s.users = s.users[:0]
	for _, u := range snap.Users {
		s.users = append(s.users, model.User{
			ID:           u.ID,
			Email:        u.Email,
			Username:     u.Username,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
		})
	}
	s.session = snap.Session
}

// Snapshot returns a consistent copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}
