package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  Ana García  ", " ana@example.com ", "secreto123", RoleSeller)
	require.NoError(t, err)

	assert.Equal(t, "Ana García", u.Name)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, RoleSeller, u.Role)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "secreto123", u.PasswordHash)
	assert.True(t, u.CheckPassword("secreto123"))
	assert.False(t, u.CheckPassword("otracosa"))
}

func TestNewUser_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		userName string
		email    string
		password string
		role     string
	}{
		{"empty name", "", "a@b.com", "secreto", RoleBuyer},
		{"bad email", "Ana", "not-an-email", "secreto", RoleBuyer},
		{"short password", "Ana", "a@b.com", "corto", RoleBuyer},
		{"admin role", "Ana", "a@b.com", "secreto", RoleAdmin},
		{"unknown role", "Ana", "a@b.com", "secreto", "vendor"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.userName, tc.email, tc.password, tc.role)
			assert.Error(t, err)
		})
	}
}

func TestUser_EmailEquals(t *testing.T) {
	u := User{Email: "Ana@Example.com"}
	assert.True(t, u.EmailEquals("ana@example.com"))
	assert.True(t, u.EmailEquals(" ANA@EXAMPLE.COM "))
	assert.False(t, u.EmailEquals("otra@example.com"))
}

func TestUser_Profile(t *testing.T) {
	u, err := NewUser("Ana", "ana@example.com", "secreto123", RoleBuyer)
	require.NoError(t, err)

	p := u.Profile()
	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, u.Email, p.Email)
	assert.Equal(t, u.Name, p.Name)
	assert.Equal(t, u.Role, p.Role)
}
