package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"hotelops/internal/models"
	"hotelops/internal/store"
)

// ErrInvalidCredentials covers unknown users, wrong passwords and bad
// tokens alike so the boundary maps all of them to 401 without leaking
// which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks credentials against the store and issues signed
// session tokens.
type AuthService struct {
	store       *store.Store
	secretKey   []byte
	tokenExpiry time.Duration
}

// SessionClaims is the JWT claims structure for dashboard sessions.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewAuthService creates the authentication service. A zero expiry
// defaults to 24 hours.
func NewAuthService(st *store.Store, secretKey string, tokenExpiry time.Duration) *AuthService {
	if tokenExpiry == 0 {
		tokenExpiry = 24 * time.Hour
	}
	return &AuthService{
		store:       st,
		secretKey:   []byte(secretKey),
		tokenExpiry: tokenExpiry,
	}
}

// Login verifies the password against the stored bcrypt hash and
// returns a signed token plus the account it belongs to.
func (a *AuthService) Login(username, password string) (string, *models.User, error) {
	user := a.store.UserByUsername(username)
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := SessionClaims{
		UserID: user.ID,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "hotelops",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secretKey)
	if err != nil {
		return "", nil, fmt.Errorf("signing session token: %w", err)
	}
	return signed, user, nil
}

// Verify parses a session token and returns the account it belongs to.
func (a *AuthService) Verify(tokenString string) (*models.User, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	user := a.store.UserByID(claims.UserID)
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
