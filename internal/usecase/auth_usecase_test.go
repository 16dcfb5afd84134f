package usecase

import (
	"context"
	"testing"
	"time"

	"go-clinic-management/config"
	"go-clinic-management/internal/delivery/dto"
	"go-clinic-management/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthUsecase(t *testing.T) (AuthUsecase, *jwt.JWTService, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	credentials, err := NewDemoCredentials("password123", bcrypt.MinCost)
	require.NoError(t, err)

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: 30 * time.Minute})
	return NewAuthUsecase(newTestLogger(), credentials, jwtService, client), jwtService, mr
}

func TestAuthUsecase_Login(t *testing.T) {
	uc, jwtService, mr := newTestAuthUsecase(t)

	resp, err := uc.Login(context.Background(), "doctor", &dto.LoginRequest{
		Username: "doctor@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(1800), resp.ExpiresIn)
	assert.Equal(t, "doctor", resp.User.Role)

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "doctor", claims.Role)

	key := AccessTokenKey(claims.AccountID, claims.TokenID)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 30*time.Minute, mr.TTL(key))
}

func TestAuthUsecase_Login_ClinicAdminAlias(t *testing.T) {
	uc, _, _ := newTestAuthUsecase(t)

	resp, err := uc.Login(context.Background(), "clinic_admin", &dto.LoginRequest{
		Username: "Admin@Example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestAuthUsecase_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		username string
		password string
		wantErr  error
	}{
		{"unknown role", "nurse", "doctor@example.com", "password123", ErrInvalidRole},
		{"unknown user", "doctor", "nobody@example.com", "password123", ErrInvalidCredentials},
		{"wrong password", "doctor", "doctor@example.com", "letmein", ErrInvalidCredentials},
		{"role mismatch", "admin", "patient@example.com", "password123", ErrInvalidCredentials},
	}

	uc, _, mr := newTestAuthUsecase(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Login(context.Background(), tt.role, &dto.LoginRequest{
				Username: tt.username,
				Password: tt.password,
			})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Empty(t, mr.Keys())
}

func TestAuthUsecase_Logout(t *testing.T) {
	uc, jwtService, mr := newTestAuthUsecase(t)

	resp, err := uc.Login(context.Background(), "patient", &dto.LoginRequest{
		Username: "patient@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), claims.AccountID, claims.TokenID))
	assert.False(t, mr.Exists(AccessTokenKey(claims.AccountID, claims.TokenID)))
}
