package services

import (
	"context"
	"errors"
	"testing"

	apperrors "wtms.com/wtms/internal/errors"
	repository "wtms.com/wtms/internal/repositories"
)

func TestAuthenticate_Success(t *testing.T) {
	db := setupTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	workers := NewWorkerService(workerRepo, testBcryptCost, testLogger())
	auth := NewAuthService(workerRepo)

	ctx := context.Background()
	if _, err := workers.Register(ctx, "Alice Smith", "alice@example.com", "secret123", "", ""); err != nil {
		t.Fatalf("failed to register worker: %v", err)
	}

	worker, err := auth.Authenticate(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("authentication failed: %v", err)
	}
	if worker.Email != "alice@example.com" {
		t.Errorf("unexpected worker returned: %q", worker.Email)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	db := setupTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	workers := NewWorkerService(workerRepo, testBcryptCost, testLogger())
	auth := NewAuthService(workerRepo)

	ctx := context.Background()
	if _, err := workers.Register(ctx, "Alice Smith", "a@b.com", "secret123", "", ""); err != nil {
		t.Fatalf("failed to register worker: %v", err)
	}

	_, err := auth.Authenticate(ctx, "a@b.com", "wrong")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	workerRepo := repository.NewWorkerRepository(db)
	auth := NewAuthService(workerRepo)

	_, err := auth.Authenticate(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
