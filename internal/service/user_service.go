package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eursukkul/meetapp-service/internal/auth"
	"github.com/Eursukkul/meetapp-service/internal/models"
	"github.com/Eursukkul/meetapp-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserExists          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrPasswordMismatch    = errors.New("password does not match")
	ErrPasswordUnconfirmed = errors.New("password confirmation does not match")
)

// UserUpdate holds the profile changes requested by a user. Empty fields are
// left untouched.
type UserUpdate struct {
	Name            string
	Email           string
	OldPassword     string
	Password        string
	ConfirmPassword string
}

type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	UpdateUser(ctx context.Context, userID uint, in UserUpdate) (*models.User, error)
	CreateSession(ctx context.Context, email, password string) (*models.User, string, error)
}

type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.Tokens
}

func NewUserService(userRepo repository.UserRepository, tokens *auth.Tokens) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID uint, in UserUpdate) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if in.Email != "" && in.Email != user.Email {
		if _, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil {
			return nil, ErrUserExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find user: %w", err)
		}
		user.Email = in.Email
	}

	if in.Name != "" {
		user.Name = in.Name
	}

	if in.Password != "" {
		if !auth.CheckPassword(user.PasswordHash, in.OldPassword) {
			return nil, ErrPasswordMismatch
		}
		if in.Password != in.ConfirmPassword {
			return nil, ErrPasswordUnconfirmed
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}

// CreateSession checks the credentials and issues a bearer token.
func (s *userService) CreateSession(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrPasswordMismatch
	}

	token, err := s.tokens.Make(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	return user, token, nil
}
