package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"wtms.com/wtms/internal/constants"
	model "wtms.com/wtms/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, title, description, dueDate string, assignedTo uint) (*model.Task, error) {
	task := &model.Task{
		Title:        title,
		Description:  description,
		DateAssigned: time.Now().UTC(),
		DueDate:      dueDate,
		Status:       constants.StatusPending,
		AssignedTo:   assignedTo,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByWorker(ctx context.Context, workerID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("assigned_to = ?", workerID).
		Order("due_date asc").
		Find(&tasks).Error
	return tasks, err
}

// MarkCompleted sets the task status to completed. Re-marking an already
// completed task is a no-op, so repeat submissions stay harmless.
func (r *TaskRepository) MarkCompleted(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Update("status", constants.StatusCompleted).Error
}

// WithTx returns a repository bound to the given transaction handle.
func (r *TaskRepository) WithTx(tx *gorm.DB) *TaskRepository {
	return &TaskRepository{db: tx}
}
