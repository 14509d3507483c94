package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashService_HashPassword(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		password string
		wantErr  error
		wantCost int
	}{
		{name: "default cost", password: "password123", wantCost: bcrypt.DefaultCost},
		{name: "custom cost", cost: bcrypt.MinCost, password: "password123", wantCost: bcrypt.MinCost},
		{name: "empty", password: "", wantErr: ErrPasswordTooShort},
		{name: "too short", password: "abc", wantErr: ErrPasswordTooShort},
		{name: "too long", password: strings.Repeat("x", MaxPasswordLength+1), wantErr: ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HashService{Cost: tt.cost}

			hash, err := h.HashPassword(tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)
				return
			}
			require.NoError(t, err)
			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cost)
		})
	}
}

func TestHashService_ComparePassword(t *testing.T) {
	h := &HashService{Cost: bcrypt.MinCost}
	hash, err := h.HashPassword("password123")
	require.NoError(t, err)

	assert.True(t, h.ComparePassword(hash, "password123"))
	assert.False(t, h.ComparePassword(hash, "password124"))
	assert.False(t, h.ComparePassword("not-a-hash", "password123"))
}
