package jwt_test

import (
	"testing"

	"hotelier/config"
	"hotelier/infras/jwt"

	"github.com/stretchr/testify/assert"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hotelier-test"
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func TestJWT_GenerateTokenPair(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair("user-id", "user@hotelier.local", "manager")

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)
}

func TestJWT_ValidateToken(t *testing.T) {
	cfg := testConfig()
	svc := jwt.New(cfg)

	pair, err := svc.GenerateTokenPair("user-id", "user@hotelier.local", "receptionist")
	assert.NoError(t, err)

	t.Run("valid access token", func(t *testing.T) {
		claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)

		assert.NoError(t, err)
		assert.Equal(t, "user-id", claims.UserID)
		assert.Equal(t, "user@hotelier.local", claims.Email)
		assert.Equal(t, "receptionist", claims.Role)
		assert.Equal(t, jwt.AccessToken, claims.Type)
		assert.NotEmpty(t, claims.TokenID)
	})

	t.Run("valid refresh token", func(t *testing.T) {
		claims, err := svc.ValidateToken(pair.RefreshToken, jwt.RefreshToken)

		assert.NoError(t, err)
		assert.Equal(t, "user-id", claims.UserID)
		assert.Equal(t, jwt.RefreshToken, claims.Type)
	})

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		_, err := svc.ValidateToken(pair.AccessToken, jwt.RefreshToken)

		assert.Error(t, err)
	})

	t.Run("tampered token", func(t *testing.T) {
		_, err := svc.ValidateToken(pair.AccessToken+"x", jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := svc.ValidateToken("", jwt.AccessToken)

		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		otherCfg := testConfig()
		otherCfg.JWT.AccessSecret = "another-secret"
		otherSvc := jwt.New(otherCfg)

		otherPair, err := otherSvc.GenerateTokenPair("user-id", "user@hotelier.local", "manager")
		assert.NoError(t, err)

		_, err = svc.ValidateToken(otherPair.AccessToken, jwt.AccessToken)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredCfg := testConfig()
		expiredCfg.JWT.AccessExpireMin = -1
		expiredSvc := jwt.New(expiredCfg)

		expiredPair, err := expiredSvc.GenerateTokenPair("user-id", "user@hotelier.local", "manager")
		assert.NoError(t, err)

		_, err = svc.ValidateToken(expiredPair.AccessToken, jwt.AccessToken)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}

func TestJWT_TokenTypeMismatch(t *testing.T) {
	// Shared secret so the signature checks out and the type claim itself is
	// what gets rejected.
	cfg := testConfig()
	cfg.JWT.RefreshSecret = cfg.JWT.AccessSecret
	svc := jwt.New(cfg)

	pair, err := svc.GenerateTokenPair("user-id", "user@hotelier.local", "manager")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestJWT_RefreshTokens(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair("user-id", "user@hotelier.local", "manager")
	assert.NoError(t, err)

	t.Run("valid refresh token yields a new pair", func(t *testing.T) {
		newPair, err := svc.RefreshTokens(pair.RefreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, newPair.AccessToken)
		assert.NotEmpty(t, newPair.RefreshToken)

		claims, err := svc.ValidateToken(newPair.AccessToken, jwt.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "user-id", claims.UserID)
		assert.Equal(t, "manager", claims.Role)
	})

	t.Run("access token cannot be used to refresh", func(t *testing.T) {
		_, err := svc.RefreshTokens(pair.AccessToken)

		assert.Error(t, err)
	})

	t.Run("garbage refresh token", func(t *testing.T) {
		_, err := svc.RefreshTokens("not-a-token")

		assert.Error(t, err)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantToken  string
		wantErr    bool
	}{
		{
			name:       "valid bearer header",
			authHeader: "Bearer some-token",
			wantToken:  "some-token",
		},
		{
			name:       "empty header",
			authHeader: "",
			wantErr:    true,
		},
		{
			name:       "missing bearer prefix",
			authHeader: "some-token",
			wantErr:    true,
		},
		{
			name:       "lowercase bearer prefix",
			authHeader: "bearer some-token",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.authHeader)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
