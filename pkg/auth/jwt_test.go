package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name           string
		actor          Actor
		expirationTime time.Time
	}{
		{
			name:           "Valid Token",
			actor:          Actor{ID: 123, Role: domain.RoleAdmin},
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Expired Token",
			actor:          Actor{ID: 123, Role: domain.RoleCustomer},
			expirationTime: time.Now().Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.actor, tt.expirationTime)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name        string
		tokenString string
		setup       func() string
		expectError bool
		expected    *Actor
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Actor{ID: 123, Role: domain.RoleEmployee}, time.Now().Add(time.Hour))
				return token
			},
			expected: &Actor{ID: 123, Role: domain.RoleEmployee},
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectError: true,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Actor{ID: 123, Role: domain.RoleAdmin}, time.Now().Add(-time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Signed with another secret",
			setup: func() string {
				token, _ := NewJWTService("other").GenerateJWT(Actor{ID: 1, Role: domain.RoleAdmin}, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Unknown role",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(Actor{ID: 1, Role: "root"}, time.Now().Add(time.Hour))
				return token
			},
			expectError: true,
		},
		{
			name: "Invalid Claims Type",
			setup: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
					ExpiresAt: time.Now().Add(time.Hour).Unix(),
					Issuer:    issuer,
				})
				signedToken, _ := token.SignedString([]byte(testSecret))
				return signedToken
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tokenString string
			if tt.setup != nil {
				tokenString = tt.setup()
			} else {
				tokenString = tt.tokenString
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected.ID, claims.UserID)
				assert.Equal(t, tt.expected.Role, claims.Role)
			}
		})
	}
}
