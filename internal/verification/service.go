package verification

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	"careerhub/internal/infrastructure/mail"
)

const (
	codeTTL    = 15 * time.Minute
	keyPrefix  = "verify:otp:"
	codeDigits = 6
)

// CodeStore is the per-key-expiry store backing issued codes. A missing key
// reads as (_, false, nil); transport failures surface as errors.
type CodeStore interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Service issues and checks one-time email verification codes. A code lives
// for 15 minutes, validates at most once, and reissuing overwrites any prior
// code for the same address (last writer wins; concurrent reissue-then-verify
// races are accepted). Verify does not throttle attempts: repeated guesses
// within the TTL are not rate limited.
type Service struct {
	store  CodeStore
	mailer mail.Sender
	logger *log.Logger
}

func NewService(store CodeStore, mailer mail.Sender, logger *log.Logger) *Service {
	return &Service{store: store, mailer: mailer, logger: logger}
}

// Issue generates a fresh 6-digit code for the address, stores it with the
// TTL and emails it. Issuance succeeds iff the store write succeeds; a mail
// delivery failure is logged but does not fail the issuance.
func (s *Service) Issue(ctx context.Context, email, name string) (string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return "", fmt.Errorf("empty email")
	}

	code, err := generateCode()
	if err != nil {
		return "", err
	}

	if err := s.store.SetString(ctx, codeKey(email), code, codeTTL); err != nil {
		return "", fmt.Errorf("store verification code: %w", err)
	}

	if s.mailer != nil {
		subject, text, html := verificationEmail(name, code)
		if _, err := s.mailer.Send(ctx, email, subject, text, html); err != nil {
			if s.logger != nil {
				s.logger.Printf("[Verification] Email dispatch failed | email=%s err=%v", email, err)
			}
		}
	}

	return code, nil
}

// Verify compares the submission against the stored code. On a match the
// code is consumed and cannot validate again. A never-issued, expired or
// wrong code all yield (false, nil).
func (s *Service) Verify(ctx context.Context, email, submitted string) (bool, error) {
	email = normalizeEmail(email)
	submitted = strings.TrimSpace(submitted)
	if email == "" || submitted == "" {
		return false, nil
	}

	stored, ok, err := s.store.GetString(ctx, codeKey(email))
	if err != nil {
		return false, fmt.Errorf("read verification code: %w", err)
	}
	if !ok {
		return false, nil
	}
	if stored != submitted {
		return false, nil
	}

	if err := s.store.Delete(ctx, codeKey(email)); err != nil {
		return false, fmt.Errorf("consume verification code: %w", err)
	}
	return true, nil
}

func codeKey(email string) string {
	return keyPrefix + email
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// generateCode draws from [0, 1e6) so leading-zero codes like "042315"
// remain six characters.
func generateCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}

func verificationEmail(name, code string) (subject, text, html string) {
	greeting := "Hi"
	if strings.TrimSpace(name) != "" {
		greeting = "Hi " + strings.TrimSpace(name)
	}

	subject = "Your verification code"
	text = fmt.Sprintf("%s,\n\nYour verification code is %s. It expires in 15 minutes.\n\nIf you did not request this, you can ignore this email.\n", greeting, code)
	html = fmt.Sprintf(`<p>%s,</p><p>Your verification code is <strong>%s</strong>. It expires in 15 minutes.</p><p>If you did not request this, you can ignore this email.</p>`, greeting, code)
	return subject, text, html
}
