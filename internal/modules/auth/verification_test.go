package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"workerconnect/internal/domain"
)

func pendingWorker(pepper, code string, expiresAt time.Time) *domain.Worker {
	hash := hashOTP(code, pepper)
	return &domain.Worker{
		ID:           11,
		Email:        "a@b.com",
		OTPHash:      hash,
		OTPExpiresAt: &expiresAt,
	}
}

func TestVerifyWorkerEmail_Success(t *testing.T) {
	svc, _, workers, jwtSvc, _, _ := newTestService()

	w := pendingWorker("test-pepper", "123456", time.Now().Add(5*time.Minute))
	workers.On("GetByEmail", mock.Anything, "a@b.com").Return(w, nil)
	workers.On("MarkEmailVerified", mock.Anything, int64(11)).Return(nil)
	jwtSvc.On("GenerateToken", int64(11), "worker").Return("worker-token", nil)

	worker, token, err := svc.VerifyWorkerEmail(context.Background(), "a@b.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, "worker-token", token)
	assert.True(t, worker.EmailVerified)
	assert.Empty(t, worker.OTPHash)
	assert.Nil(t, worker.OTPExpiresAt)
	workers.AssertExpectations(t)
}

func TestVerifyWorkerEmail_WrongCode(t *testing.T) {
	svc, _, workers, _, _, _ := newTestService()

	w := pendingWorker("test-pepper", "123456", time.Now().Add(5*time.Minute))
	workers.On("GetByEmail", mock.Anything, "a@b.com").Return(w, nil)

	_, _, err := svc.VerifyWorkerEmail(context.Background(), "a@b.com", "654321")

	assert.ErrorIs(t, err, ErrInvalidOTP)
	workers.AssertNotCalled(t, "MarkEmailVerified", mock.Anything, mock.Anything)
}

func TestVerifyWorkerEmail_MalformedCode(t *testing.T) {
	svc, _, workers, _, _, _ := newTestService()

	w := pendingWorker("test-pepper", "123456", time.Now().Add(5*time.Minute))
	workers.On("GetByEmail", mock.Anything, "a@b.com").Return(w, nil)

	_, _, err := svc.VerifyWorkerEmail(context.Background(), "a@b.com", "12ab56")
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestVerifyWorkerEmail_Expired(t *testing.T) {
	svc, _, workers, _, _, _ := newTestService()

	// The right code after the deadline is still rejected.
	w := pendingWorker("test-pepper", "123456", time.Now().Add(-time.Minute))
	workers.On("GetByEmail", mock.Anything, "a@b.com").Return(w, nil)

	_, _, err := svc.VerifyWorkerEmail(context.Background(), "a@b.com", "123456")

	assert.ErrorIs(t, err, ErrOTPExpired)
	workers.AssertNotCalled(t, "MarkEmailVerified", mock.Anything, mock.Anything)
}

func TestVerifyWorkerEmail_NoPendingCode(t *testing.T) {
	svc, _, workers, _, _, _ := newTestService()

	workers.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.Worker{ID: 11, Email: "a@b.com"}, nil)

	_, _, err := svc.VerifyWorkerEmail(context.Background(), "a@b.com", "123456")
	assert.ErrorIs(t, err, ErrNoPendingOTP)
}

func TestVerifyWorkerEmail_AlreadyVerified(t *testing.T) {
	svc, _, workers, jwtSvc, _, _ := newTestService()

	workers.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.Worker{
		ID:            11,
		Email:         "a@b.com",
		EmailVerified: true,
	}, nil)
	jwtSvc.On("GenerateToken", int64(11), "worker").Return("worker-token", nil)

	worker, token, err := svc.VerifyWorkerEmail(context.Background(), "a@b.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, "worker-token", token)
	assert.True(t, worker.EmailVerified)
	workers.AssertNotCalled(t, "MarkEmailVerified", mock.Anything, mock.Anything)
}

func TestVerifyWorkerEmail_UnknownAccount(t *testing.T) {
	svc, _, workers, _, _, _ := newTestService()

	workers.On("GetByEmail", mock.Anything, "ghost@b.com").Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.VerifyWorkerEmail(context.Background(), "ghost@b.com", "123456")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestResendWorkerOTP_OverwritesPendingCode(t *testing.T) {
	svc, _, workers, _, m, _ := newTestService()

	w := pendingWorker("test-pepper", "123456", time.Now().Add(5*time.Minute))
	workers.On("GetByEmail", mock.Anything, "a@b.com").Return(w, nil)

	var storedHash string
	workers.On("SetOTP", mock.Anything, int64(11), mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		storedHash = args.String(2)
	}).Return(nil)

	require.NoError(t, svc.ResendWorkerOTP(context.Background(), "a@b.com"))

	assert.Len(t, m.lastCode, 6)
	assert.Equal(t, hashOTP(m.lastCode, "test-pepper"), storedHash)
}

func TestResendWorkerOTP_AlreadyVerified(t *testing.T) {
	svc, _, workers, _, _, _ := newTestService()

	workers.On("GetByEmail", mock.Anything, "a@b.com").Return(&domain.Worker{
		ID:            11,
		Email:         "a@b.com",
		EmailVerified: true,
	}, nil)

	err := svc.ResendWorkerOTP(context.Background(), "a@b.com")
	assert.ErrorIs(t, err, ErrAlreadyVerified)
	workers.AssertNotCalled(t, "SetOTP", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHashOTP_PepperChangesDigest(t *testing.T) {
	assert.NotEqual(t, hashOTP("123456", "a"), hashOTP("123456", "b"))
	assert.Equal(t, hashOTP("123456", "a"), hashOTP("123456", "a"))
}
