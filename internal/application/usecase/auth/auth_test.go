package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/finance-tracker/bookkeeping/internal/application/usecase/auth"
	domainerror "github.com/finance-tracker/bookkeeping/internal/domain/error"
	"github.com/finance-tracker/bookkeeping/internal/integration/adapters"
	"github.com/finance-tracker/bookkeeping/internal/integration/persistence"
	"github.com/finance-tracker/bookkeeping/internal/testutil"
)

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	require.True(t, errors.As(err, &authErr), "expected auth error, got %v", err)
	return authErr.Code
}

func TestRegisterLoginAndMe(t *testing.T) {
	db := testutil.NewTestDB(t)
	users := persistence.NewUserRepository(db)
	passwords := adapters.NewPasswordService(bcrypt.MinCost)
	clock := testutil.FixedClock{At: time.Now().UTC()}
	tokens := adapters.NewTokenService("secret", time.Hour, "bookkeeping", clock)
	register := auth.NewRegisterUserUseCase(users, passwords, tokens)
	login := auth.NewLoginUserUseCase(users, passwords, tokens)
	me := auth.NewGetCurrentUserUseCase(users)
	ctx := context.Background()

	out, err := register.Execute(ctx, auth.RegisterUserInput{Email: " Owner@Example.com ", Name: "Owner", Password: "ledger-pass-1"})
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", out.User.Email)
	assert.NotEmpty(t, out.AccessToken)

	_, err = register.Execute(ctx, auth.RegisterUserInput{Email: "owner@example.com", Name: "Again", Password: "ledger-pass-1"})
	assert.Equal(t, domainerror.ErrCodeEmailExists, authCode(t, err))

	_, err = register.Execute(ctx, auth.RegisterUserInput{Email: "new@example.com", Name: "New", Password: "short"})
	assert.Equal(t, domainerror.ErrCodeWeakPassword, authCode(t, err))

	_, err = register.Execute(ctx, auth.RegisterUserInput{Email: "not-an-email", Name: "New", Password: "ledger-pass-1"})
	assert.Equal(t, domainerror.ErrCodeMissingFields, authCode(t, err))

	loggedIn, err := login.Execute(ctx, auth.LoginUserInput{Email: "OWNER@example.com", Password: "ledger-pass-1"})
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, loggedIn.User.ID)

	_, err = login.Execute(ctx, auth.LoginUserInput{Email: "owner@example.com", Password: "wrong-pass-1"})
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))

	_, err = login.Execute(ctx, auth.LoginUserInput{Email: "nobody@example.com", Password: "ledger-pass-1"})
	assert.Equal(t, domainerror.ErrCodeInvalidCredentials, authCode(t, err))

	user, err := me.Execute(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Owner", user.Name)
}
