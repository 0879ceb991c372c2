package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sbilibin2017/jobboard/internal/apperrors"
	"github.com/sbilibin2017/jobboard/internal/logger"
	"github.com/sbilibin2017/jobboard/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, email, passwordHash string, role models.Role, isPaid bool) (*models.UserDB, error)
}

// TokenGenerator issues session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, email string, role models.Role) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// dummyHash is compared against on unknown emails so both login failures cost one bcrypt run.
var dummyHash = sync.OnceValue(func() []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return hash
})

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user with a self-registrable role and returns it with a fresh session token.
func (svc *AuthService) Register(ctx context.Context, email, password, role string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" || role == "" {
		return nil, "", ErrMissingFields
	}

	parsed, err := models.ParseRole(role)
	if err != nil || !parsed.SelfRegistrable() {
		return nil, "", ErrInvalidRole
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", apperrors.Internal(err)
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "email", email)
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, "", ErrPasswordTooLong
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", apperrors.Internal(err)
	}

	// accounts are created paid; billing is not part of this service
	created, err := svc.writer.Create(ctx, email, string(hashedPassword), parsed, true)
	if errors.Is(err, apperrors.ErrDuplicate) {
		logger.Log.Infow("user created concurrently", "email", email)
		return nil, "", ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", apperrors.Internal(err)
	}

	token, err := svc.tokens.Generate(ctx, created.ID, created.Email, created.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", apperrors.Internal(err)
	}

	logger.Log.Infow("user registered", "user_id", created.ID, "role", created.Role)
	return created.ToUser(), token, nil
}

// Login authenticates a user and returns it with a session token.
// An unknown email and a wrong password are reported the same way.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", apperrors.Internal(err)
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", apperrors.Internal(err)
	}

	return user.ToUser(), token, nil
}
