package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fintrackhq/fintrack/internal/domain/entity"
	"github.com/fintrackhq/fintrack/internal/domain/repository"
	"github.com/fintrackhq/fintrack/pkg/apperr"
	"github.com/fintrackhq/fintrack/pkg/helpers"
)

// Login failures collapse into this single message so the response cannot
// be used to probe which emails are registered.
const msgInvalidCredentials = "Invalid email or password"

type UserService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
}

type UpdateProfileInput struct {
	Name        string
	OldPassword string
	NewPassword string
	PhoneNumber string
	Address     string
}

// Session carries a freshly issued token together with its expiry so the
// handler can attach the cookie.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// Register hashes the password, persists the new user and issues a session
// token. A uniqueness violation on email is reported as a request error.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		s.Logger.WithError(err).Error("password hash failed")
		return nil, apperr.Persistence(err)
	}

	u := &entity.User{
		Name:        in.Name,
		Email:       in.Email,
		Password:    hash,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.Validation("Email is already registered")
		}
		s.Logger.WithError(err).WithField("email", in.Email).Error("create user failed")
		return nil, apperr.Persistence(err)
	}

	return s.issueSession(u)
}

// Login verifies the credentials. An unknown email and a wrong password
// produce the identical authentication error.
func (s *UserService) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Authentication(msgInvalidCredentials)
		}
		s.Logger.WithError(err).Error("lookup user by email failed")
		return nil, apperr.Persistence(err)
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, apperr.Authentication(msgInvalidCredentials)
	}

	return s.issueSession(u)
}

func (s *UserService) issueSession(u *entity.User) (*Session, error) {
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return nil, apperr.Persistence(err)
	}
	return &Session{Token: token, ExpiresAt: exp, User: u}, nil
}

// GetProfile returns the user record for the authenticated identity.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Persistence(err)
	}
	return u, nil
}

// UpdateProfile applies a partial update for the authenticated identity.
// Omitted fields keep their stored values; omission never clears a field.
// Changing the password requires the current one and a mismatch is an
// unprocessable error, distinct from not-found and bad-request. Rotating
// the password does not invalidate tokens already issued.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Persistence(err)
	}

	if in.OldPassword != "" && in.NewPassword != "" {
		if !helpers.CompareHashAndPassword(u.Password, in.OldPassword) {
			return nil, apperr.Unprocessable("Old password is incorrect")
		}
		hash, err := helpers.HashPassword(in.NewPassword)
		if err != nil {
			s.Logger.WithError(err).Error("password hash failed")
			return nil, apperr.Persistence(err)
		}
		u.Password = hash
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.PhoneNumber != "" {
		u.PhoneNumber = in.PhoneNumber
	}
	if in.Address != "" {
		u.Address = in.Address
	}

	if err := s.Repo.Update(ctx, u); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("update user failed")
		return nil, apperr.Persistence(err)
	}
	return u, nil
}
