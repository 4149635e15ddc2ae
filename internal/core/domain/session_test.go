package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapStore map[string]string

func (m mapStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapStore) Set(key, value string) { m[key] = value }

func (m mapStore) Delete(key string) { delete(m, key) }

func TestSessionRoundTrip(t *testing.T) {
	t.Run("Authenticated employee", func(t *testing.T) {
		store := mapStore{}
		Login(RoleEmployee).Save(store)

		got := LoadSession(store)
		assert.True(t, got.Authenticated)
		assert.Equal(t, RoleEmployee, got.Role)
	})

	t.Run("Logout clears both keys", func(t *testing.T) {
		store := mapStore{}
		Login(RoleClient).Save(store)
		Login(RoleClient).Logout().Save(store)

		got := LoadSession(store)
		assert.False(t, got.Authenticated)
		assert.Equal(t, RoleAnonymous, got.Role)
		_, ok := store.Get(SessionRoleKey)
		assert.False(t, ok)
	})
}

func TestLoadSessionDegradesToAnonymous(t *testing.T) {
	t.Run("Empty store", func(t *testing.T) {
		got := LoadSession(mapStore{})
		assert.Equal(t, Anonymous(), got)
	})

	t.Run("Stale role string without auth flag reads as none", func(t *testing.T) {
		store := mapStore{SessionRoleKey: "employee"}
		got := LoadSession(store)
		assert.False(t, got.Authenticated)
		assert.Equal(t, RoleAnonymous, got.Role)
	})

	t.Run("Auth flag with null role reads as anonymous", func(t *testing.T) {
		store := mapStore{SessionAuthKey: "true", SessionRoleKey: "null"}
		assert.Equal(t, Anonymous(), LoadSession(store))
	})

	t.Run("Auth flag with undefined role reads as anonymous", func(t *testing.T) {
		store := mapStore{SessionAuthKey: "true", SessionRoleKey: "undefined"}
		assert.Equal(t, Anonymous(), LoadSession(store))
	})

	t.Run("Garbage auth flag", func(t *testing.T) {
		store := mapStore{SessionAuthKey: "yes", SessionRoleKey: "client"}
		assert.Equal(t, Anonymous(), LoadSession(store))
	})
}

func TestLoginWithAnonymousRoleStaysAnonymous(t *testing.T) {
	assert.Equal(t, Anonymous(), Login(RoleAnonymous))
}
