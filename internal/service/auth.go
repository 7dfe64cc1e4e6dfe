package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/HyperionMedia/Plated-Free-sub001/internal/middleware"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/model"
	"github.com/HyperionMedia/Plated-Free-sub001/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues and validates tokens against the store's user
// collection. The store itself only ever consumes the resulting
// identity and authenticated flag.
type AuthService struct {
	store     *store.Store
	jwtSecret string
}

func NewAuthService(s *store.Store, jwtSecret string) *AuthService {
	return &AuthService{store: s, jwtSecret: jwtSecret}
}

// Register creates a user and returns a signed token. Email uniqueness
// is case-insensitive and enforced by the store.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (model.User, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", err
	}

	user := model.User{
		ID:           model.NewID(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.store.AddUser(ctx, user); err != nil {
		return model.User{}, "", err
	}
	if err := s.store.SetSession(ctx, user.ID, true); err != nil {
		return model.User{}, "", err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return model.User{}, "", err
	}
	return user, token, nil
}

// Login checks credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.User, string, error) {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return model.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, "", ErrInvalidCredentials
	}
	if err := s.store.SetSession(ctx, user.ID, true); err != nil {
		return model.User{}, "", err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return model.User{}, "", err
	}
	return user, token, nil
}

// Logout clears the authenticated flag.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.SetSession(ctx, "", false)
}

func (s *AuthService) generateToken(user model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken implements middleware.TokenValidator.
func (s *AuthService) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	username, _ := claims["username"].(string)
	return &middleware.TokenClaims{UserID: userID, Username: username}, nil
}
