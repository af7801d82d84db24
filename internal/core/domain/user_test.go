package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/garage_invoice_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewUser(t *testing.T) {
	u, err := domain.NewUser(" alice ", " A@X.com ", "pw123", bcrypt.MinCost)
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "pw123", u.PasswordHash)
	assert.True(t, u.CheckPassword("pw123"))
	assert.False(t, u.CheckPassword("wrong"))
	assert.False(t, u.IsAdmin)
}

func TestCustomerPatch_Apply(t *testing.T) {
	c := &domain.Customer{Name: "Bob", Email: "bob@x.com", Contact: "555"}
	email := "NEW@X.COM"
	domain.CustomerPatch{Email: &email, Address: &domain.Address{City: "Pune"}}.Apply(c)

	assert.Equal(t, "Bob", c.Name)
	assert.Equal(t, "new@x.com", c.Email)
	assert.Equal(t, "555", c.Contact)
	require.NotNil(t, c.Address)
	assert.Equal(t, "Pune", c.Address.City)
}

func TestTimestamps_Touch(t *testing.T) {
	var ts domain.Timestamps
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ts.Touch(first)
	later := first.Add(time.Hour)
	ts.Touch(later)

	assert.Equal(t, first, ts.CreatedAt)
	assert.Equal(t, later, ts.UpdatedAt)
}
