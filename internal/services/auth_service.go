package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "wtms.com/wtms/internal/errors"
	model "wtms.com/wtms/internal/models"
	repository "wtms.com/wtms/internal/repositories"
)

type AuthService struct {
	workerRepo *repository.WorkerRepository
}

func NewAuthService(workerRepo *repository.WorkerRepository) *AuthService {
	return &AuthService{workerRepo: workerRepo}
}

// Authenticate verifies the credentials and returns the worker on success.
// Unknown email and wrong password produce the same error so the caller
// cannot tell which part was wrong.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.Worker, error) {
	worker, err := s.workerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(worker.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return worker, nil
}
