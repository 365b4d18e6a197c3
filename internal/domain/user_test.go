package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cassioviller/ViajeyPlanner/internal/domain"
)

func TestUser_SetPassword(t *testing.T) {
	u := &domain.User{}

	err := u.SetPassword("s3cret-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "s3cret-password", u.PasswordHash)

	// Same plaintext hashes to a different value because of the salt.
	prev := u.PasswordHash
	err = u.SetPassword("s3cret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, prev, u.PasswordHash)
}

func TestUser_CheckPassword(t *testing.T) {
	u := &domain.User{}
	err := u.SetPassword("s3cret-password")
	assert.NoError(t, err)

	assert.True(t, u.CheckPassword("s3cret-password"))
	assert.False(t, u.CheckPassword("wrong-password"))
	assert.False(t, u.CheckPassword(""))
}

func TestItinerary_VisibleTo(t *testing.T) {
	private := &domain.Itinerary{ID: 1, UserID: 10, IsPublic: false}
	public := &domain.Itinerary{ID: 2, UserID: 10, IsPublic: true}

	assert.True(t, private.VisibleTo(10))
	assert.False(t, private.VisibleTo(11))
	assert.True(t, public.VisibleTo(10))
	assert.True(t, public.VisibleTo(11))
}
