package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/Domenick1991/spacebooking/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type UserUseCase interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
}

type CreateUserInput struct {
	Username  string
	Email     string
	Password  string
	FullName  string
	Bio       *string
	AvatarURL *string
}

type UserService struct {
	users    repository.UserRepository
	logger   *logrus.Logger
	hashCost int
}

type Option func(*UserService)

func WithHashCost(cost int) Option {
	return func(s *UserService) {
		s.hashCost = cost
	}
}

func NewUserService(users repository.UserRepository, logger *logrus.Logger, opts ...Option) *UserService {
	s := &UserService{users: users, logger: logger, hashCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// CreateUser registers a traveler with level 1 and zeroed statistics.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	switch {
	case username == "":
		return nil, domain.InvalidInput("username is required")
	case email == "":
		return nil, domain.InvalidInput("email is required")
	case !strings.Contains(email, "@"):
		return nil, domain.InvalidInput("email %q is not valid", email)
	case input.Password == "":
		return nil, domain.InvalidInput("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:       username,
		Email:          email,
		HashedPassword: string(hash),
		FullName:       strings.TrimSpace(input.FullName),
		Bio:            input.Bio,
		AvatarURL:      input.AvatarURL,
		TravelerLevel:  1,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user created")
	return user, nil
}

var _ UserUseCase = (*UserService)(nil)
