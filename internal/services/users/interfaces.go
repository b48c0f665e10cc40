package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/killallgit/podcaster-api/internal/models"
)

// UserRepository defines the data access interface for users
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// TokenIssuer signs session tokens
type TokenIssuer interface {
	IssueToken(userID uuid.UUID, email string) (string, error)
}

// UserService defines the business logic interface for accounts
type UserService interface {
	SignUp(ctx context.Context, input SignUpInput) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// SignUpInput carries a registration request
type SignUpInput struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Session is the result of a successful sign-in
type Session struct {
	User  *models.User
	Token string
}
