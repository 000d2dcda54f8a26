package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test_secret_key", time.Hour)

	t.Run("should round-trip subject and username claims", func(t *testing.T) {
		req := require.New(t)

		token, err := svc.Issue("user-123", "alice")
		req.NoError(err)
		req.NotEmpty(token)

		claims, err := svc.Verify(token)
		req.NoError(err)
		req.Equal("user-123", claims.Subject)
		req.Equal("alice", claims.Username)
	})

	t.Run("should reject tokens signed with another secret", func(t *testing.T) {
		req := require.New(t)

		other := NewTokenService("a_different_secret", time.Hour)
		token, err := other.Issue("user-123", "alice")
		req.NoError(err)

		_, err = svc.Verify(token)
		req.Error(err)
	})

	t.Run("should reject expired tokens", func(t *testing.T) {
		req := require.New(t)

		expired := NewTokenService("test_secret_key", -time.Minute)
		token, err := expired.Issue("user-123", "alice")
		req.NoError(err)

		_, err = svc.Verify(token)
		req.Error(err)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		req := require.New(t)

		_, err := svc.Verify("not.a.token")
		req.Error(err)
	})
}
