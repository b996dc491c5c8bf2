package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"careerhub/internal/domain/account"
	"careerhub/internal/pkg/jwt"
	ucauth "careerhub/internal/usecase/auth"

	"github.com/google/uuid"
)

type mockAccountRepo struct {
	byEmail map[string]account.Account

	createErr error
	markErr   error
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{byEmail: map[string]account.Account{}}
}

func (m *mockAccountRepo) Create(_ context.Context, a account.Account) error {
	if m.createErr != nil {
		return m.createErr
	}
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	m.byEmail[a.Email] = a
	return nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id uuid.UUID) (account.Account, error) {
	for _, a := range m.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (account.Account, error) {
	a, ok := m.byEmail[email]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return a, nil
}

func (m *mockAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockAccountRepo) MarkEmailVerified(_ context.Context, email string) error {
	if m.markErr != nil {
		return m.markErr
	}
	a, ok := m.byEmail[email]
	if !ok {
		return account.ErrNotFound
	}
	a.EmailVerified = true
	m.byEmail[email] = a
	return nil
}

type mockVerifier struct {
	issued   []string
	code     string
	issueErr error

	verifyOK  bool
	verifyErr error
}

func (m *mockVerifier) Issue(_ context.Context, email, _ string) (string, error) {
	if m.issueErr != nil {
		return "", m.issueErr
	}
	m.issued = append(m.issued, email)
	if m.code == "" {
		m.code = "123456"
	}
	return m.code, nil
}

func (m *mockVerifier) Verify(_ context.Context, _, _ string) (bool, error) {
	return m.verifyOK, m.verifyErr
}

func testJWTService() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAuthUsecase_Register_IssuesVerification(t *testing.T) {
	repo := newMockAccountRepo()
	verifier := &mockVerifier{}
	uc := NewAuthUsecase(repo, testJWTService(), verifier, nil)

	acc, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "Student@Example.com",
		Password: "secret-password",
		Role:     account.RoleStudent,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if acc.Email != "student@example.com" {
		t.Fatalf("expected normalized email, got %q", acc.Email)
	}
	if acc.EmailVerified {
		t.Fatalf("new account must start unverified")
	}
	if len(verifier.issued) != 1 || verifier.issued[0] != "student@example.com" {
		t.Fatalf("expected verification issued, got %v", verifier.issued)
	}
}

func TestAuthUsecase_Register_SurvivesVerifierFailure(t *testing.T) {
	repo := newMockAccountRepo()
	verifier := &mockVerifier{issueErr: errors.New("smtp down")}
	uc := NewAuthUsecase(repo, testJWTService(), verifier, nil)

	if _, err := uc.Register(context.Background(), ucauth.RegisterInput{
		Email:    "student@example.com",
		Password: "secret-password",
		Role:     account.RoleStudent,
	}); err != nil {
		t.Fatalf("registration must survive a verification hiccup: %v", err)
	}
	if _, ok := repo.byEmail["student@example.com"]; !ok {
		t.Fatalf("expected account persisted")
	}
}

func TestAuthUsecase_Login_RequiresVerifiedEmail(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAuthUsecase(repo, testJWTService(), &mockVerifier{}, nil)

	in := ucauth.RegisterInput{Email: "company@example.com", Password: "secret-password", Role: account.RoleCompany}
	if _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, _, _, err := uc.Login(context.Background(), ucauth.LoginInput{Email: in.Email, Password: in.Password})
	if !errors.Is(err, ucauth.ErrEmailNotVerified) {
		t.Fatalf("expected ErrEmailNotVerified, got %v", err)
	}

	if err := repo.MarkEmailVerified(context.Background(), in.Email); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	acc, access, refresh, err := uc.Login(context.Background(), ucauth.LoginInput{Email: in.Email, Password: in.Password})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected token pair")
	}
	if acc.PasswordHash != "" {
		t.Fatalf("password hash must not leak")
	}
}

func TestAuthUsecase_Refresh(t *testing.T) {
	repo := newMockAccountRepo()
	uc := NewAuthUsecase(repo, testJWTService(), &mockVerifier{}, nil)

	in := ucauth.RegisterInput{Email: "student@example.com", Password: "secret-password", Role: account.RoleStudent}
	if _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := repo.MarkEmailVerified(context.Background(), in.Email); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, access, refresh, err := uc.Login(context.Background(), ucauth.LoginInput{Email: in.Email, Password: in.Password})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), refresh); err != nil {
		t.Fatalf("refresh with refresh token should work: %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token must not refresh, got %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}

func TestAuthUsecase_ConfirmVerification(t *testing.T) {
	repo := newMockAccountRepo()
	verifier := &mockVerifier{verifyOK: true}
	uc := NewAuthUsecase(repo, testJWTService(), verifier, nil)

	in := ucauth.RegisterInput{Email: "student@example.com", Password: "secret-password", Role: account.RoleStudent}
	if _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.ConfirmVerification(context.Background(), "Student@Example.com", "123456"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !repo.byEmail["student@example.com"].EmailVerified {
		t.Fatalf("expected account marked verified")
	}
}

func TestAuthUsecase_ConfirmVerification_WrongCode(t *testing.T) {
	repo := newMockAccountRepo()
	verifier := &mockVerifier{verifyOK: false}
	uc := NewAuthUsecase(repo, testJWTService(), verifier, nil)

	err := uc.ConfirmVerification(context.Background(), "student@example.com", "000000")
	if !errors.Is(err, ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode, got %v", err)
	}
}

func TestAuthUsecase_RequestVerification_UpstreamFailure(t *testing.T) {
	uc := NewAuthUsecase(newMockAccountRepo(), testJWTService(), &mockVerifier{issueErr: errors.New("redis down")}, nil)

	if err := uc.RequestVerification(context.Background(), "student@example.com", ""); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
