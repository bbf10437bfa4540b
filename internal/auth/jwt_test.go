package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "bloghub-test",
		Duration: time.Hour,
	}
}

func TestSignAndParse(t *testing.T) {
	ts := testTokenService()
	u := &User{
		ID:           "u1",
		Username:     "jane",
		Email:        "jane@example.com",
		TokenVersion: 3,
	}

	token, exp, err := ts.Sign(u)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "jane", claims.Username)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Equal(t, "bloghub-test", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	token, _, err := testTokenService().Sign(&User{ID: "u1"})
	require.NoError(t, err)

	other := testTokenService()
	other.Secret = []byte("different-secret")
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := testTokenService().Parse("not.a.token")
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	ts := testTokenService()
	ts.Duration = -time.Minute

	token, _, err := ts.Sign(&User{ID: "u1"})
	require.NoError(t, err)

	_, err = ts.Parse(token)
	assert.Error(t, err)
}
