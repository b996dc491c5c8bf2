package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"careerhub/internal/domain/account"
	"careerhub/internal/pkg/jwt"
	ucauth "careerhub/internal/usecase/auth"
)

// Verifier is the OTP email-verification flow consumed by auth.
type Verifier interface {
	Issue(ctx context.Context, email, name string) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (account.Account, error)
	Login(ctx context.Context, in ucauth.LoginInput) (account.Account, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	RequestVerification(ctx context.Context, email, name string) error
	ConfirmVerification(ctx context.Context, email, code string) error
}

type Auth struct {
	authSvc  *ucauth.Service
	accounts account.Repository
	jwt      jwt.Service
	verifier Verifier
	logger   *log.Logger
}

func NewAuthUsecase(accounts account.Repository, jwtSvc jwt.Service, verifier Verifier, logger *log.Logger) *Auth {
	return &Auth{
		authSvc:  ucauth.NewService(accounts),
		accounts: accounts,
		jwt:      jwtSvc,
		verifier: verifier,
		logger:   logger,
	}
}

// Register creates the account and kicks off email verification. The account
// cannot log in until the address is confirmed, so no tokens are returned
// here. A verification hiccup does not undo the registration; the user can
// re-request a code.
func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (account.Account, error) {
	acc, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return account.Account{}, err
	}

	if u.verifier != nil {
		if _, err := u.verifier.Issue(ctx, acc.Email, ""); err != nil && u.logger != nil {
			u.logger.Printf("[Auth] Verification issue failed | email=%s err=%v", acc.Email, err)
		}
	}

	return acc, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (account.Account, string, string, error) {
	acc, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return account.Account{}, "", "", err
	}

	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Email, acc.Role)
	if err != nil {
		return account.Account{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(acc.ID)
	if err != nil {
		return account.Account{}, "", "", ErrInternal
	}

	return acc, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	acc, err := u.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(acc.ID, acc.Email, acc.Role)
	if err != nil {
		return "", "", ErrInternal
	}
	newRefresh, err := u.jwt.GenerateRefreshToken(acc.ID)
	if err != nil {
		return "", "", ErrInternal
	}

	return access, newRefresh, nil
}

func (u *Auth) RequestVerification(ctx context.Context, email, name string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ErrInvalidInput
	}
	if u.verifier == nil {
		return ErrInternal
	}

	if _, err := u.verifier.Issue(ctx, email, name); err != nil {
		return ErrUpstream
	}
	return nil
}

func (u *Auth) ConfirmVerification(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(code) == "" {
		return ErrInvalidInput
	}
	if u.verifier == nil {
		return ErrInternal
	}

	ok, err := u.verifier.Verify(ctx, email, code)
	if err != nil {
		return ErrUpstream
	}
	if !ok {
		return ErrInvalidCode
	}

	if err := u.accounts.MarkEmailVerified(ctx, email); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}
