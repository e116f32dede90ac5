package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	dto "wtms.com/wtms/internal/data_models"
	apperrors "wtms.com/wtms/internal/errors"
	model "wtms.com/wtms/internal/models"
	repository "wtms.com/wtms/internal/repositories"
)

// SubmissionService records completed work and advances the bound task.
type SubmissionService struct {
	db             *gorm.DB
	taskRepo       *repository.TaskRepository
	submissionRepo *repository.SubmissionRepository
	logger         *zap.Logger
}

func NewSubmissionService(
	db *gorm.DB,
	taskRepo *repository.TaskRepository,
	submissionRepo *repository.SubmissionRepository,
	logger *zap.Logger,
) *SubmissionService {
	return &SubmissionService{
		db:             db,
		taskRepo:       taskRepo,
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// SubmitWork inserts a submission and marks the task completed in one
// transaction. Either both writes land or neither does. Submitting
// against the same task again adds another row; the status update is a
// no-op by then.
func (s *SubmissionService) SubmitWork(ctx context.Context, workID, workerID uint, text string) (*model.Submission, error) {
	if _, err := s.taskRepo.FindByID(ctx, workID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	var submission *model.Submission
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		submission, txErr = s.submissionRepo.WithTx(tx).Create(ctx, workID, workerID, text)
		if txErr != nil {
			return txErr
		}
		return s.taskRepo.WithTx(tx).MarkCompleted(ctx, workID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("work submitted",
		zap.Uint("submission_id", submission.ID),
		zap.Uint("work_id", workID),
		zap.Uint("worker_id", workerID),
	)

	return submission, nil
}

// EditSubmission replaces the submission text. A missing id or identical
// text reports changed=false rather than an error.
func (s *SubmissionService) EditSubmission(ctx context.Context, submissionID uint, text string) (bool, error) {
	rows, err := s.submissionRepo.UpdateText(ctx, submissionID, text)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// ListWorkerSubmissions returns the worker's submission history, newest
// first, each row joined with its task title.
func (s *SubmissionService) ListWorkerSubmissions(ctx context.Context, workerID uint) ([]dto.SubmissionWithTitle, error) {
	return s.submissionRepo.ListByWorker(ctx, workerID)
}
