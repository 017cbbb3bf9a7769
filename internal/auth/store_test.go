package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/auth"
	"github.com/SchoolHub-Admin/SchoolHub-Admin/internal/db/models"
)

// memoryStore is an in-memory auth.AccountStore.
type memoryStore struct {
	mu       sync.Mutex
	users    []*auth.Operator
	students []*auth.Student
	parents  []*auth.Guardian
	err      error
}

func (m *memoryStore) FindUserByEmail(_ context.Context, email string) (*auth.Operator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}

	return nil, auth.ErrAccountNotFound
}

func (m *memoryStore) FindStudentByEmail(_ context.Context, email string) (*auth.Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}

	return nil, auth.ErrAccountNotFound
}

func (m *memoryStore) FindParentByEmail(_ context.Context, email string) (*auth.Guardian, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.parents {
		if p.Email == email {
			return p, nil
		}
	}

	return nil, auth.ErrAccountNotFound
}

func (m *memoryStore) FindAccount(_ context.Context, kind auth.Kind, id int64) (auth.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch kind {
	case auth.KindUser:
		for _, u := range m.users {
			if u.ID == id {
				return u, nil
			}
		}
	case auth.KindStudent:
		for _, s := range m.students {
			if s.ID == id {
				return s, nil
			}
		}
	case auth.KindParent:
		for _, p := range m.parents {
			if p.ID == id {
				return p, nil
			}
		}
	}

	return nil, auth.ErrAccountNotFound
}

var (
	hashOnce sync.Once
	hashed   string
)

// secretHash returns the hash of "secret", computed once per test binary.
func secretHash(t *testing.T) string {
	t.Helper()

	hashOnce.Do(func() {
		var err error
		hashed, err = models.HashPassword("secret")
		require.NoError(t, err)
	})

	return hashed
}

func profile(t *testing.T, id int64, email string, status models.AccountStatus) auth.Profile {
	t.Helper()

	return auth.Profile{ID: id, Email: email, PasswordHash: secretHash(t), Status: status}
}

func testKeys() auth.Keys {
	return auth.Keys{
		Issuer:        "schoolhub-test",
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
	}
}
