package users

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/killallgit/podcaster-api/internal/models"
	apperrors "github.com/killallgit/podcaster-api/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 6

	msgInvalidCredentials = "Invalid credentials"
)

type Service struct {
	repository UserRepository
	tokens     TokenIssuer
	cost       int
}

func NewService(repository UserRepository, tokens TokenIssuer) UserService {
	return &Service{
		repository: repository,
		tokens:     tokens,
		cost:       bcrypt.DefaultCost,
	}
}

// SignUp validates and stores a new account
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if username == "" || email == "" || input.Password == "" {
		return nil, apperrors.MissingFieldError("All fields are required", "username", "email", "password")
	}
	if len(username) < MinUsernameLength {
		return nil, apperrors.ValidationError("Username must have at least 3 characters")
	}
	if len(input.Password) < MinPasswordLength {
		return nil, apperrors.ValidationError("Password must have at least 6 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.ValidationError("Invalid email address")
	}

	taken, err := s.repository.UsernameExists(ctx, username)
	if err != nil {
		return nil, apperrors.DatabaseError("username check", err)
	}
	if taken {
		return nil, apperrors.AlreadyExists("Username already exists")
	}
	taken, err = s.repository.EmailExists(ctx, email)
	if err != nil {
		return nil, apperrors.DatabaseError("email check", err)
	}
	if taken {
		return nil, apperrors.AlreadyExists("Email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to hash password")
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.repository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, apperrors.AlreadyExists("Username or email already exists")
		}
		return nil, apperrors.DatabaseError("create user", err)
	}

	log.Printf("[INFO] User %s signed up", user.ID)
	return user, nil
}

// SignIn checks credentials and issues a session token
func (s *Service) SignIn(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperrors.MissingFieldError("All fields are required", "email", "password")
	}

	user, err := s.repository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.ValidationError(msgInvalidCredentials)
		}
		return nil, apperrors.DatabaseError("get user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ValidationError(msgInvalidCredentials)
	}

	token, err := s.tokens.IssueToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to issue token")
	}

	return &Session{User: user, Token: token}, nil
}

// GetByID loads a user; unknown ids are reported as unauthorized
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.Unauthorized("Unauthorized")
		}
		return nil, apperrors.DatabaseError("get user", err)
	}
	return user, nil
}
