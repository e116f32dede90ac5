package repository

import (
	"context"

	"gorm.io/gorm"

	model "wtms.com/wtms/internal/models"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) Create(ctx context.Context, worker *model.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

func (r *WorkerRepository) FindByID(ctx context.Context, id uint) (*model.Worker, error) {
	var worker model.Worker
	err := r.db.WithContext(ctx).First(&worker, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepository) FindByEmail(ctx context.Context, email string) (*model.Worker, error) {
	var worker model.Worker
	err := r.db.WithContext(ctx).First(&worker, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *WorkerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Worker{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ListIDs returns the ids of every registered worker, the snapshot the
// random assignment draws from.
func (r *WorkerRepository) ListIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&model.Worker{}).Order("id asc").Pluck("id", &ids).Error
	return ids, err
}

// UpdateFields applies a partial update and reports how many rows changed.
func (r *WorkerRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Worker{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}
