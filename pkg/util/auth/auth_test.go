package auth_test

import (
	"context"
	"encoding/base64"
	"portfolio-go-backend/config"
	"portfolio-go-backend/pkg/util/auth"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	config.ReadConfig(config.ReadConfigOption{})

	token, err := auth.GenerateAccessToken("1234")
	assert.Nil(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.ValidateTokenAndReturnClaims(token, []byte(config.C.JwtTokenSecret))
	assert.Nil(t, err, "Error should be nil")
	assert.NotNil(t, claims, "Claim should not be null")
	assert.Equal(t, "1234", claims.UserId)
}

func TestGetTokenFromBearer(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() string
		act     func(t *testing.T, bearerToken string) (string, error)
		assert  func(t *testing.T, token string, err error)
	}{
		{
			name: "Should return correct token",
			arrange: func() string {
				return "Bearer sometoken"
			},
			act: func(t *testing.T, bearerToken string) (string, error) {
				return auth.GetTokenFromBearer(bearerToken)
			},
			assert: func(t *testing.T, token string, err error) {
				assert.Nil(t, err)
				assert.Equal(t, "sometoken", token)
			},
		},
		{
			name: "Should return error if token is empty",
			arrange: func() string {
				return ""
			},
			act: func(t *testing.T, bearerToken string) (string, error) {
				return auth.GetTokenFromBearer(bearerToken)
			},
			assert: func(t *testing.T, token string, err error) {
				assert.Equal(t, "", token)
				assert.NotNil(t, err)
			},
		},
		{
			name: "Should return error when Bearer is missing from token",
			arrange: func() string {
				return "sometoken"
			},
			act: func(t *testing.T, bearerToken string) (string, error) {
				return auth.GetTokenFromBearer(bearerToken)
			},
			assert: func(t *testing.T, token string, err error) {
				assert.Equal(t, "", token)
				assert.NotNil(t, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bearerToken := tt.arrange()
			token, err := tt.act(t, bearerToken)
			tt.assert(t, token, err)
		})
	}
}

func TestTokenContextRoundTrip(t *testing.T) {
	t.Run("Should set and get the access token", func(t *testing.T) {
		ctx, err := auth.SetTokenToContext(context.Background(), "sometoken")
		assert.Nil(t, err)

		token, err := auth.GetTokenFromContext(ctx)
		assert.Nil(t, err)
		assert.Equal(t, "sometoken", token)
	})

	t.Run("Should return error when token is empty", func(t *testing.T) {
		ctx, err := auth.SetTokenToContext(context.Background(), "")
		assert.NotNil(t, err)
		assert.Nil(t, ctx)
	})

	t.Run("Should return error when no token is set", func(t *testing.T) {
		token, err := auth.GetTokenFromContext(context.Background())
		assert.Equal(t, "", token)
		assert.NotNil(t, err)
	})

	t.Run("Should set and get the refresh token", func(t *testing.T) {
		ctx, err := auth.SetRefreshTokenToContext(context.Background(), "refreshtoken")
		assert.Nil(t, err)

		token, err := auth.GetRefreshTokenFromContext(ctx)
		assert.Nil(t, err)
		assert.Equal(t, "refreshtoken", token)
	})
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() string
		act     func(plainPassword string) (string, error)
		assert  func(t *testing.T, hashedPassword string, err error)
	}{{
		name: "Should hash the password",
		arrange: func() string {
			return "somepassword"
		},
		act: func(plainPassword string) (string, error) {
			return auth.HashPassword(plainPassword)
		},
		assert: func(t *testing.T, hashedPassword string, err error) {
			assert.Nil(t, err)
			assert.NotEmpty(t, hashedPassword)

			parts := strings.Split(hashedPassword, "$")
			assert.Equal(t, 6, len(parts))
			assert.Equal(t, "argon2id", parts[1])
			assert.Equal(t, "v=19", parts[2])
			assert.Equal(t, "m=65536,t=3,p=2", parts[3])
			assert.Equal(t, base64.RawStdEncoding.EncodedLen(16), len(parts[4]))
			assert.Equal(t, base64.RawStdEncoding.EncodedLen(32), len(parts[5]))
		},
	}, {
		name: "Should throw error if password provided is empty",
		arrange: func() string {
			return ""
		},
		act: func(plainPassword string) (string, error) {
			return auth.HashPassword(plainPassword)
		},
		assert: func(t *testing.T, hashedPassword string, err error) {
			assert.NotNil(t, err)
			assert.Equal(t, "", hashedPassword)
		},
	}, {
		name: "Should throw error if password is less than 8 chars long",
		arrange: func() string {
			return "passwd"
		},
		act: func(plainPassword string) (string, error) {
			return auth.HashPassword(plainPassword)
		},
		assert: func(t *testing.T, hashedPassword string, err error) {
			assert.NotNil(t, err)
			assert.Equal(t, "", hashedPassword)
		},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plainPassword := tt.arrange()
			hashedPassword, err := tt.act(plainPassword)
			tt.assert(t, hashedPassword, err)
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	tests := []struct {
		name    string
		arrange func() (plainPassword string, encodedHash string)
		act     func(plainPassword, encodedHash string) error
		assert  func(t *testing.T, err error)
	}{
		{
			name: "Should verify correct password",
			arrange: func() (string, string) {
				plain := "mysecret12"
				encoded, err := auth.HashPassword(plain)
				if err != nil {
					t.Fatalf("failed to hash password: %v", err)
				}
				return plain, encoded
			},
			act: func(plainPassword, encodedHash string) error {
				return auth.VerifyPassword(plainPassword, encodedHash)
			},
			assert: func(t *testing.T, err error) {
				assert.Nil(t, err, "Expected no error when verifying correct password")
			},
		},
		{
			name: "Should fail verification for incorrect password",
			arrange: func() (string, string) {
				encoded, err := auth.HashPassword("mysecret12")
				if err != nil {
					t.Fatalf("failed to hash password: %v", err)
				}
				return "wrongsecret", encoded
			},
			act: func(plainPassword, encodedHash string) error {
				return auth.VerifyPassword(plainPassword, encodedHash)
			},
			assert: func(t *testing.T, err error) {
				assert.NotNil(t, err, "Expected error when password does not match")
			},
		},
		{
			name: "Should fail for invalid hash format",
			arrange: func() (string, string) {
				return "mysecret12", "invalid-hash"
			},
			act: func(plainPassword, encodedHash string) error {
				return auth.VerifyPassword(plainPassword, encodedHash)
			},
			assert: func(t *testing.T, err error) {
				assert.NotNil(t, err, "Expected error for invalid hash format")
				assert.Contains(t, err.Error(), "invalid hash format")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plainPassword, encodedHash := tt.arrange()
			err := tt.act(plainPassword, encodedHash)
			tt.assert(t, err)
		})
	}
}

func TestRefreshTokens(t *testing.T) {
	config.ReadConfig(config.ReadConfigOption{})

	refreshToken, err := auth.GenerateRefreshToken("1234")
	assert.Nil(t, err)

	accessToken, newRefreshToken, err := auth.RefreshTokens(refreshToken)
	assert.Nil(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, newRefreshToken)
}
