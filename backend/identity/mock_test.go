package identity

import (
	"context"
	"testing"
	"time"

	"edubridge/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticateAcceptsUnknownAccounts(t *testing.T) {
	m := NewMock(0)
	err := m.Authenticate(context.Background(), "anyone@example.com", "whatever", models.RoleStudent)
	assert.NoError(t, err)
}

func TestAuthenticateChecksRegisteredAccounts(t *testing.T) {
	m := NewMock(0)
	ctx := context.Background()
	require.NoError(t, m.Register(ctx, "Ada", "ada@example.com", "correct horse", models.RoleStudent))

	assert.NoError(t, m.Authenticate(ctx, "ada@example.com", "correct horse", models.RoleStudent))

	err := m.Authenticate(ctx, "ada@example.com", "wrong", models.RoleStudent)
	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestWaitHonorsCancellation(t *testing.T) {
	m := NewMock(100 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := m.Authenticate(ctx, "x@example.com", "pw", models.RoleStudent)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}
