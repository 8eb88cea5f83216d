package service

import (
	"context"
	"strings"

	"attendra/internal/entity"
	"attendra/internal/repository"
	"attendra/internal/utils"

	"github.com/google/uuid"
)

const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	Role            entity.UserRole
	LinkedStudentID *uuid.UUID
	YearLevel       string
	Section         string
	Courses         string
	ContactNumber   *string
	Gender          *string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string
	ExpiresIn int64
	User      *entity.User
}

// AuthService is the identity collaborator: account registration, credential
// checks, and role lookups for the rest of the system.
type AuthService struct {
	users        repository.UserRepository
	passwordHash PasswordHasher
	accessTokens AccessTokenIssuer
}

func NewAuthService(users repository.UserRepository, passwordHash PasswordHasher, accessTokens AccessTokenIssuer) *AuthService {
	return &AuthService{
		users:        users,
		passwordHash: passwordHash,
		accessTokens: accessTokens,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if strings.TrimSpace(input.FullName) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}
	if !validRole(input.Role) {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FullName:        input.FullName,
		Email:           email,
		PasswordHash:    &hash,
		Role:            input.Role,
		LinkedStudentID: input.LinkedStudentID,
		YearLevel:       input.YearLevel,
		Section:         input.Section,
		Courses:         input.Courses,
		ContactNumber:   input.ContactNumber,
		Gender:          input.Gender,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(input.Email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		// burn a comparison so misses and mismatches take the same time
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		return nil, ErrInvalidCredentials
	}
	if !s.passwordHash.Verify(*user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	token, ttl, err := s.accessTokens.IssueAccessToken(*user)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(ttl.Seconds()),
		User:      user,
	}, nil
}

func (s *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context, limit, offset int) ([]entity.User, error) {
	return s.users.List(ctx, limit, offset)
}

func validRole(role entity.UserRole) bool {
	switch role {
	case entity.UserRoleStudent, entity.UserRoleTeacher, entity.UserRoleParent, entity.UserRoleAdmin:
		return true
	}
	return false
}
