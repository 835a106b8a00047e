package identity

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"edubridge/backend/models"
)

type account struct {
	hash []byte
	role models.Role
}

// Mock stands in for a real identity provider. It accepts any account it has
// never seen, so login cannot fail for fresh emails; accounts registered
// through it are checked against their bcrypt hash. The delay models the
// provider round trip.
type Mock struct {
	delay time.Duration

	mu       sync.Mutex
	accounts map[string]account
}

func NewMock(delay time.Duration) *Mock {
	return &Mock{
		delay:    delay,
		accounts: make(map[string]account),
	}
}

func (m *Mock) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (m *Mock) Authenticate(ctx context.Context, email, password string, _ models.Role) error {
	if err := m.wait(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	acct, known := m.accounts[email]
	m.mu.Unlock()
	if !known {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword(acct.hash, []byte(password)); err != nil {
		return &AuthError{Reason: "invalid credentials"}
	}
	return nil
}

func (m *Mock) Register(ctx context.Context, _, email, password string, role models.Role) error {
	if err := m.wait(ctx); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.accounts[email] = account{hash: hash, role: role}
	m.mu.Unlock()
	return nil
}
