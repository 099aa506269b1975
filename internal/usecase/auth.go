package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/habeshadev/habesha-dating-api/internal/auth"
	"github.com/habeshadev/habesha-dating-api/internal/config"
	"github.com/habeshadev/habesha-dating-api/internal/model"
	"github.com/habeshadev/habesha-dating-api/internal/repository"
	"github.com/habeshadev/habesha-dating-api/internal/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Email    string
	Password string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

// LoginResult carries the issued session token and the logged-in user.
type LoginResult struct {
	Token string
	User  *model.User
}

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type authUsecase struct {
	userRepo repository.UserRepository
	hasher   security.Hasher
	jwtAuth  auth.JWTAuthenticator
	cfg      *config.Config
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	hasher security.Hasher,
	jwtAuth auth.JWTAuthenticator,
	cfg *config.Config,
) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		jwtAuth:  jwtAuth,
		cfg:      cfg,
	}
}

// Register hashes the password and inserts a new user. The email is
// lowercased before the insert so that case-variant duplicates collide on the
// unique index.
func (u *authUsecase) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	passwordHash, err := u.hasher.HashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Email:        normalizeEmail(params.Email),
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}

		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a session token. An unknown email
// and a wrong password both return ErrInvalidCredentials so that responses do
// not reveal whether an account exists.
func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, normalizeEmail(params.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if ok, err := u.hasher.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtAuth.GenerateSessionToken(user.ID.Hex(), u.cfg.JWTSecret, u.cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
