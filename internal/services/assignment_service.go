package services

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	apperrors "wtms.com/wtms/internal/errors"
	model "wtms.com/wtms/internal/models"
	repository "wtms.com/wtms/internal/repositories"
)

// AssignmentService creates tasks bound to a worker, either one named
// by the caller or one drawn at random from the directory.
type AssignmentService struct {
	workerRepo *repository.WorkerRepository
	taskRepo   *repository.TaskRepository
	logger     *zap.Logger
}

func NewAssignmentService(
	workerRepo *repository.WorkerRepository,
	taskRepo *repository.TaskRepository,
	logger *zap.Logger,
) *AssignmentService {
	return &AssignmentService{
		workerRepo: workerRepo,
		taskRepo:   taskRepo,
		logger:     logger,
	}
}

// AssignToWorker creates a pending task for the given worker. The worker
// must exist before anything is written; an insert failure after the
// check leaves no partial state behind.
func (s *AssignmentService) AssignToWorker(ctx context.Context, title, description, dueDate string, workerID uint) (*model.Task, error) {
	exists, err := s.workerRepo.Exists(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrWorkerNotFound
	}

	task, err := s.taskRepo.Create(ctx, title, description, dueDate, workerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("task assigned",
		zap.Uint("task_id", task.ID),
		zap.Uint("worker_id", workerID),
	)

	return task, nil
}

// AssignToRandomWorker picks uniformly among the worker ids visible at
// call time and creates a pending task for the pick.
func (s *AssignmentService) AssignToRandomWorker(ctx context.Context, title, description, dueDate string) (*model.Task, error) {
	ids, err := s.workerRepo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, apperrors.ErrNoWorkersRegistered
	}

	workerID := ids[rand.Intn(len(ids))]

	task, err := s.taskRepo.Create(ctx, title, description, dueDate, workerID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("task assigned to random worker",
		zap.Uint("task_id", task.ID),
		zap.Uint("worker_id", workerID),
	)

	return task, nil
}

// ListWorkerTasks returns the worker's tasks ordered by due date. A worker
// with no tasks gets an empty list, not an error.
func (s *AssignmentService) ListWorkerTasks(ctx context.Context, workerID uint) ([]model.Task, error) {
	return s.taskRepo.ListByWorker(ctx, workerID)
}
