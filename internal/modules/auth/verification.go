package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"workerconnect/internal/domain"
	"workerconnect/internal/pkg/validator"
)

// ResendWorkerOTP issues a fresh code for an unverified worker, overwriting
// any pending one. Re-issue is idempotent; only an already verified email
// is rejected.
func (s *Service) ResendWorkerOTP(ctx context.Context, email string) error {
	worker, err := s.findWorker(ctx, email)
	if err != nil {
		return err
	}
	if worker.EmailVerified {
		return ErrAlreadyVerified
	}
	return s.issueOTP(ctx, worker)
}

// VerifyWorkerEmail consumes the pending code. On success the worker is
// marked verified, the code fields are cleared, and a login token is issued.
// Verifying an already verified email succeeds trivially.
func (s *Service) VerifyWorkerEmail(ctx context.Context, email, code string) (*domain.Worker, string, error) {
	worker, err := s.findWorker(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if !worker.EmailVerified {
		if worker.OTPHash == "" || worker.OTPExpiresAt == nil {
			return nil, "", ErrNoPendingOTP
		}
		if !validator.IsOTPCode(code) {
			return nil, "", ErrInvalidOTP
		}
		if !worker.OTPExpiresAt.After(time.Now()) {
			return nil, "", ErrOTPExpired
		}

		inputHash := hashOTP(code, s.otpPepper)
		if subtle.ConstantTimeCompare([]byte(inputHash), []byte(worker.OTPHash)) != 1 {
			return nil, "", ErrInvalidOTP
		}

		if err := s.workers.MarkEmailVerified(ctx, worker.ID); err != nil {
			return nil, "", err
		}
		worker.EmailVerified = true
		worker.OTPHash = ""
		worker.OTPExpiresAt = nil
	}

	token, err := s.jwt.GenerateToken(worker.ID, string(domain.RoleWorker))
	if err != nil {
		return nil, "", err
	}

	worker.PasswordHash = ""
	return worker, token, nil
}

// issueOTP generates a 6-digit code, stores its peppered hash with the
// configured expiry, and dispatches it by email.
func (s *Service) issueOTP(ctx context.Context, worker *domain.Worker) error {
	code, err := generateOTP()
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.otpTTL)
	if err := s.workers.SetOTP(ctx, worker.ID, hashOTP(code, s.otpPepper), expiresAt); err != nil {
		return err
	}

	return s.mailer.SendOTP(ctx, worker.Email, code)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func hashOTP(code, pepper string) string {
	sum := sha256.Sum256([]byte(code + pepper))
	return hex.EncodeToString(sum[:])
}
