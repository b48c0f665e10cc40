package users

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/killallgit/podcaster-api/internal/database"
	"github.com/killallgit/podcaster-api/internal/services/auth"
	apperrors "github.com/killallgit/podcaster-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupService(t *testing.T) (UserService, *auth.Service) {
	t.Helper()

	conn, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.Migrate())

	tokens, err := auth.NewService("test-secret", time.Hour)
	require.NoError(t, err)

	service := NewService(NewRepository(conn.DB), tokens)
	service.(*Service).cost = bcrypt.MinCost
	return service, tokens
}

func TestService_SignUp(t *testing.T) {
	service, _ := setupService(t)
	ctx := context.Background()

	user, err := service.SignUp(ctx, SignUpInput{Username: "alice", Email: "Alice@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	tests := []struct {
		name   string
		input  SignUpInput
		status int
		code   apperrors.ErrorCode
	}{
		{"missing password", SignUpInput{Username: "bobby", Email: "bob@example.com"}, http.StatusBadRequest, apperrors.ErrCodeMissingField},
		{"short username", SignUpInput{Username: "bo", Email: "bob@example.com", Password: "secret1"}, http.StatusBadRequest, apperrors.ErrCodeValidation},
		{"short password", SignUpInput{Username: "bobby", Email: "bob@example.com", Password: "12345"}, http.StatusBadRequest, apperrors.ErrCodeValidation},
		{"bad email", SignUpInput{Username: "bobby", Email: "bob", Password: "secret1"}, http.StatusBadRequest, apperrors.ErrCodeValidation},
		{"username taken", SignUpInput{Username: "alice", Email: "other@example.com", Password: "secret1"}, http.StatusBadRequest, apperrors.ErrCodeAlreadyExists},
		{"email taken", SignUpInput{Username: "alice2", Email: "alice@example.com", Password: "secret1"}, http.StatusBadRequest, apperrors.ErrCodeAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.SignUp(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.status, apperrors.GetHTTPCode(err))
			assert.Equal(t, tt.code, apperrors.GetCode(err))
		})
	}
}

func TestService_SignUpShortestUsername(t *testing.T) {
	service, _ := setupService(t)

	user, err := service.SignUp(context.Background(), SignUpInput{Username: "bob", Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
}

func TestService_SignIn(t *testing.T) {
	service, tokens := setupService(t)
	ctx := context.Background()

	user, err := service.SignUp(ctx, SignUpInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	session, err := service.SignIn(ctx, " ALICE@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, session.User.ID)

	claims, err := tokens.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.ID)

	_, err = service.SignIn(ctx, "alice@example.com", "wrong-password")
	assert.Equal(t, http.StatusBadRequest, apperrors.GetHTTPCode(err))

	_, err = service.SignIn(ctx, "nobody@example.com", "secret1")
	assert.Equal(t, http.StatusBadRequest, apperrors.GetHTTPCode(err))

	_, err = service.SignIn(ctx, "", "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
}

func TestService_GetByID(t *testing.T) {
	service, _ := setupService(t)
	ctx := context.Background()

	user, err := service.SignUp(ctx, SignUpInput{Username: "alice", Email: "alice@example.com", Password: "secret1"})
	require.NoError(t, err)

	got, err := service.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = service.GetByID(ctx, uuid.New())
	assert.Equal(t, http.StatusUnauthorized, apperrors.GetHTTPCode(err))
}
