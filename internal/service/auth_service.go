package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"blog_backend/internal/config"
	"blog_backend/internal/models"
	"blog_backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	// ErrEmailTaken signals a signup against an already-registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately undifferentiated to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken covers bad signature, wrong algorithm and expiry.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrMalformedToken signals a verifiable token with no subject claim.
	ErrMalformedToken = errors.New("token has no subject")
	// ErrUserNotFound signals a token whose subject no longer resolves to a
	// stored user (e.g. the user was deleted after issuance).
	ErrUserNotFound = errors.New("user not found")
)

// AuthService handles password hashing, token issuance/validation and
// identity resolution.
type AuthService struct {
	users repository.Users
	cfg   config.Auth
}

func NewAuthService(users repository.Users, cfg config.Auth) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// SignUp registers a new user and immediately issues a token: signing up
// implies an authenticated session.
func (s *AuthService) SignUp(ctx context.Context, name, email, password string) (string, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}
	if _, err := s.users.Create(ctx, name, email, hash); err != nil {
		return "", err
	}
	return s.issueToken(email, s.cfg.AccessTokenTTL)
}

// Login validates credentials and returns a token. Unknown email and wrong
// password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(email, s.cfg.AccessTokenTTL)
}

// ParseToken verifies signature and expiry and returns the subject email.
// It does not check that the subject still exists; that is UserByEmail's job.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SigningKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrMalformedToken
	}
	return claims.Subject, nil
}

// UserByEmail resolves a token subject to a stored user.
func (s *AuthService) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// issueToken signs a JWT with the subject email and an absolute expiry of
// now + ttl (the configured default when ttl is zero). The jti claim makes
// consecutive tokens for the same subject distinct strings.
func (s *AuthService) issueToken(email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.cfg.TokenTTL
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   email,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	})
	return token.SignedString([]byte(s.cfg.SigningKey))
}
