package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"solsite/apperr"
)

var (
	// ErrInvalidCredentials signals wrong email or password. The same value
	// is returned for an unknown email and for a failed password comparison
	// so callers cannot tell which part was wrong.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrInvalidToken signals a missing, malformed, expired or forged token.
	ErrInvalidToken = errors.New("auth: invalid token")
)

// TokenTTL is the default session token lifetime.
const TokenTTL = 24 * time.Hour

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service handles authentication business logic.
type Service struct {
	repo      Repository
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// LoginResult bundles the token and domain account returned after a
// successful login.
type LoginResult struct {
	Token   string
	Account Account
}

// NewService creates a new authentication service. A non-positive ttl
// falls back to TokenTTL.
func NewService(repo Repository, jwtSecret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &Service{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  ttl,
		now:       time.Now,
	}
}

// WithClock overrides the service clock for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// NormalizeEmail lowercases and trims an email address. Registration and
// login must agree on this so the same mailbox always maps to one account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. Every violated validation rule is
// reported, not just the first. New accounts are never admins; promotion
// happens out of band.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Account, error) {
	email := NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	var violations []string
	if !emailPattern.MatchString(email) {
		violations = append(violations, "email must be a valid email address")
	}
	if err := checkPassword(req.Password); err != "" {
		violations = append(violations, err)
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 100 {
		violations = append(violations, "name must be between 2 and 100 characters")
	}
	if len(violations) > 0 {
		return nil, apperr.NewValidation(violations...)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	account, err := s.repo.CreateAccount(ctx, CreateAccountParams{
		Email:        email,
		Name:         name,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		return nil, err
	}

	return &account, nil
}

// Login authenticates an account and returns a signed session token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	account, err := s.repo.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(account.ID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: generate token: %w", err)
	}

	return LoginResult{
		Token:   token,
		Account: account,
	}, nil
}

// VerifyToken validates a session token and returns the bound account id.
// The token carries no authorization claims; admin checks re-read the
// store at request time.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	accountID, ok := claims["sub"].(string)
	if !ok || accountID == "" {
		return "", ErrInvalidToken
	}

	return accountID, nil
}

// GetProfile re-reads the credential store for the account behind a
// verified identity.
func (s *Service) GetProfile(ctx context.Context, accountID string) (*Account, error) {
	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// IsAdmin reports the account's current admin flag. Authorization uses
// this fresh read instead of anything embedded in the token, so a demoted
// admin loses access on their very next request.
func (s *Service) IsAdmin(ctx context.Context, accountID string) (bool, error) {
	return s.repo.IsAdmin(ctx, accountID)
}

func (s *Service) generateToken(accountID string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": accountID,
		"exp": now.Add(s.tokenTTL).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// checkPassword returns an empty string when the password satisfies the
// policy: at least 6 characters with one uppercase letter, one lowercase
// letter and one digit.
func checkPassword(password string) string {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if len(password) < 6 || !hasUpper || !hasLower || !hasDigit {
		return "password must be at least 6 characters and contain an uppercase letter, a lowercase letter and a digit"
	}
	return ""
}
