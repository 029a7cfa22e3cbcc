package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fixify/database/repository"
	userRepo "fixify/database/repository/user"
	"fixify/models"
	"fixify/utils"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on a failed sign-in. The message does not
// distinguish a missing account from a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = 24 * time.Hour

// RegisterInput is a new account request.
type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

// AuthResponse carries the issued token plus the account.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService manages platform accounts.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResponse, error)
	SignIn(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo repository.UserRepository
}

// Register creates a customer or provider account and signs it in. Admin
// accounts are provisioned out of band, never through this endpoint.
func (svc *DefaultUserService) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	if input.Role != models.RoleCustomer && input.Role != models.RoleProvider {
		return nil, fmt.Errorf("unsupported role: %s", input.Role)
	}
	if existing, err := svc.Repo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.User{
		Role:         input.Role,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
	}
	if err := svc.Repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return svc.issue(account)
}

// SignIn authenticates by email and password.
func (svc *DefaultUserService) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	account, err := svc.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return svc.issue(account)
}

// GetUserByID returns an account by id.
func (svc *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return svc.Repo.GetByID(ctx, id)
}

func (svc *DefaultUserService) issue(account *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(account.ID, account.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{Token: token, User: account}, nil
}
