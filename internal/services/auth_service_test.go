package services

import (
	"context"
	"testing"

	"jobhub_backend/internal/models"
	"jobhub_backend/internal/services/dto"
	"jobhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seekerSignUp(email string) dto.SignUpRequest {
	return dto.SignUpRequest{
		Email:       email,
		Password:    "sufficiently-long-password",
		Name:        "Test Seeker",
		AccountKind: "individual",
	}
}

func TestAuthService_SignUpSeeker(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()

	resp, err := svc.SignUp(ctx, seekerSignUp("new@example.com"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "new@example.com", resp.User.Email)
	assert.Equal(t, models.UserRoleSeeker, resp.User.Role)

	// Оба токена проходят проверку своими секретами
	claims, err := env.tokens.ParseAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	_, err = env.tokens.ParseRefreshToken(resp.RefreshToken)
	require.NoError(t, err)

	// Выдача пары создает запись в леджере
	assert.Equal(t, int64(1), env.sessionCount(t))

	// Профиль создан вместе с пользователем
	profile, err := env.profiles.FindByUserID(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Seeker", profile.Name)
}

func TestAuthService_SignUpCompanyCreatesCompanyRow(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()

	resp, err := svc.SignUp(context.Background(), dto.SignUpRequest{
		Email:       "employer@example.com",
		Password:    "sufficiently-long-password",
		Name:        "Owner",
		AccountKind: "company",
		CompanyName: "Acme GmbH",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleCompany, resp.User.Role)

	company, err := env.companies.FindByOwnerID(resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", company.Name)
}

// Email уникален без учета регистра
func TestAuthService_SignUpDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, seekerSignUp("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, seekerSignUp("DUP@Example.com"))
	require.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthService_SignUpWeakPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()

	req := seekerSignUp("weak@example.com")
	req.Password = "short"

	_, err := svc.SignUp(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthService_SignIn(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, seekerSignUp("user@example.com"))
	require.NoError(t, err)

	resp, err := svc.SignIn(ctx, dto.SignInRequest{
		Email:    "User@Example.com",
		Password: "sufficiently-long-password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

// Неизвестный email и неверный пароль дают одну и ту же ошибку:
// по ответу нельзя понять, зарегистрирован ли адрес
func TestAuthService_SignInUniformFailure(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, seekerSignUp("known@example.com"))
	require.NoError(t, err)

	_, errUnknown := svc.SignIn(ctx, dto.SignInRequest{Email: "unknown@example.com", Password: "whatever-pass"})
	_, errWrongPass := svc.SignIn(ctx, dto.SignInRequest{Email: "known@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, errUnknown, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, apperrors.ErrInvalidCredentials)
}

// У OAuth-пользователя нет пароля: парольный вход для него закрыт
// той же единой ошибкой
func TestAuthService_SignInOAuthOnlyUser(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()

	env.createSeeker(t, "oauth-only@example.com")

	_, err := svc.SignIn(context.Background(), dto.SignInRequest{
		Email:    "oauth-only@example.com",
		Password: "any-password-at-all",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshRotatesSession(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()

	signUp, err := svc.SignUp(ctx, seekerSignUp("rotate@example.com"))
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, signUp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, signUp.RefreshToken, refreshed.RefreshToken)

	// Ротация: сессий по-прежнему одна, старый токен мертв
	assert.Equal(t, int64(1), env.sessionCount(t))

	_, err = svc.Refresh(ctx, signUp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// Новый токен работает
	_, err = svc.Refresh(ctx, refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthService_RefreshGarbageToken(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()

	_, err := svc.Refresh(context.Background(), "not-a-jwt-at-all")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

// Валидная подпись без записи в леджере - отозванный токен
func TestAuthService_RefreshRevokedToken(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()
	ctx := context.Background()

	resp, err := svc.SignUp(ctx, seekerSignUp("revoked@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.RefreshToken))

	_, err = svc.Refresh(ctx, resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthService_LogoutUnknownTokenIsNoop(t *testing.T) {
	env := newTestEnv(t)
	svc := env.authService()

	assert.NoError(t, svc.Logout(context.Background(), "completely-unknown-token"))
}
