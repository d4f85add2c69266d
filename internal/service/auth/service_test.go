package auth

import (
	"context"
	"testing"

	"github.com/guardian-payroll/backend-go/internal/domain/auth"
	"github.com/guardian-payroll/backend-go/internal/domain/employee"
	"github.com/guardian-payroll/backend-go/internal/pkg/jwt"
	"github.com/guardian-payroll/backend-go/internal/repository/inmemory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (auth.AuthService, employee.Employee) {
	t.Helper()

	employeeRepo := inmemory.NewEmployeeRepository()
	jwtService := jwt.NewJWTService("test-secret-key", "1h", "168h")

	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	emp, err := employeeRepo.Create(context.Background(), employee.Employee{
		FullName:     "Juan Pérez",
		Email:        "juan@example.com",
		PasswordHash: string(hash),
		Role:         employee.RoleSupervisor,
		ShiftRate:    decimal.NewFromInt(600),
	})
	require.NoError(t, err)

	return NewAuthService(employeeRepo, jwtService), emp
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue both tokens", func(t *testing.T) {
		svc, emp := newAuthFixture(t)

		result, refreshToken, refreshExpiresAt, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "juan@example.com",
			Password: "secreto123",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, result.AccessToken)
		assert.Positive(t, result.ExpiresAt)
		assert.Equal(t, emp.ID, result.Employee.ID)
		assert.Equal(t, string(employee.RoleSupervisor), result.Employee.Role)
		assert.NotEmpty(t, refreshToken)
		assert.Positive(t, refreshExpiresAt)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, _, _, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "juan@example.com",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email gets the same error as a wrong password", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, _, _, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secreto123",
		})
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid refresh token issues a new access token", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, refreshToken, _, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "juan@example.com",
			Password: "secreto123",
		})
		require.NoError(t, err)

		result, err := svc.Refresh(ctx, refreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Positive(t, result.ExpiresAt)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, err := svc.Refresh(ctx, "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("an access token cannot be used to refresh", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		result, _, _, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "juan@example.com",
			Password: "secreto123",
		})
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, result.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("logout revokes the refresh token", func(t *testing.T) {
		svc, _ := newAuthFixture(t)

		_, refreshToken, _, err := svc.Login(ctx, auth.LoginRequest{
			Email:    "juan@example.com",
			Password: "secreto123",
		})
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, refreshToken))

		_, err = svc.Refresh(ctx, refreshToken)
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	})
}
