package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/joblane/joblane-backend/internal/models"
	mongorepo "github.com/joblane/joblane-backend/internal/repositories/mongo"
	"github.com/joblane/joblane-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Role     models.UserRole
	Company  string
}

type AuthService interface {
	Register(ctx context.Context, p RegisterParams) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Me(ctx context.Context, userID string) (*models.User, error)
}

type authService struct {
	users mongorepo.UserRepository
}

func NewAuthService(users mongorepo.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Register(ctx context.Context, p RegisterParams) (*models.User, string, error) {
	const op = "AuthService.Register"

	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))

	if p.Name == "" || p.Email == "" || p.Password == "" {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "name, email, and password are required", nil)
	}
	if !p.Role.Valid() {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "role must be jobseeker or recruiter", nil)
	}
	if len(p.Password) < 6 {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "password must be at least 6 characters", nil)
	}

	hash, err := utils.HashPassword(p.Password)
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	user := &models.User{
		Name:      p.Name,
		Email:     p.Email,
		Password:  hash,
		Role:      p.Role,
		CreatedAt: time.Now().UTC(),
	}
	if p.Role == models.RoleRecruiter {
		user.Company = strings.TrimSpace(p.Company)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, "", utils.E(utils.CodeConflict, op, "email is already registered", err)
		}
		return nil, "", utils.E(utils.CodeInternal, op, "failed to create user", err)
	}

	token, err := utils.SignToken(user.ID.Hex(), string(user.Role))
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	const op = "AuthService.Login"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", err)
		}
		return nil, "", utils.E(utils.CodeInternal, op, "failed to look up user", err)
	}

	if err := utils.CheckPassword(user.Password, password); err != nil {
		return nil, "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", err)
	}

	token, err := utils.SignToken(user.ID.Hex(), string(user.Role))
	if err != nil {
		return nil, "", utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return user, token, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*models.User, error) {
	const op = "AuthService.Me"

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, utils.E(utils.CodeUnauthorized, op, "invalid user id", err)
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	return user, nil
}
