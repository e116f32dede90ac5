package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	dto "wtms.com/wtms/internal/data_models"
	apperrors "wtms.com/wtms/internal/errors"
	model "wtms.com/wtms/internal/models"
	repository "wtms.com/wtms/internal/repositories"
)

// WorkerService owns the worker directory: registration and profile access.
type WorkerService struct {
	workerRepo *repository.WorkerRepository
	bcryptCost int
	logger     *zap.Logger
}

func NewWorkerService(workerRepo *repository.WorkerRepository, bcryptCost int, logger *zap.Logger) *WorkerService {
	return &WorkerService{
		workerRepo: workerRepo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *WorkerService) Register(ctx context.Context, fullName, email, password, phone, address string) (*model.Worker, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	worker := &model.Worker{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		Address:      address,
	}

	if err := s.workerRepo.Create(ctx, worker); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, err
	}

	s.logger.Info("worker registered", zap.Uint("worker_id", worker.ID))

	return worker, nil
}

func (s *WorkerService) Profile(ctx context.Context, workerID uint) (*model.Worker, error) {
	worker, err := s.workerRepo.FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkerNotFound
		}
		return nil, err
	}
	return worker, nil
}

// UpdateProfile applies only the supplied fields. Email and id never
// change here. Returns whether any row actually changed.
func (s *WorkerService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (bool, error) {
	fields := map[string]interface{}{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if len(fields) == 0 {
		return false, nil
	}

	rows, err := s.workerRepo.UpdateFields(ctx, uint(req.ID), fields)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
