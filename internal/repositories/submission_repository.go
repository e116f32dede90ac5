package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	dto "wtms.com/wtms/internal/data_models"
	model "wtms.com/wtms/internal/models"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, workID, workerID uint, text string) (*model.Submission, error) {
	submission := &model.Submission{
		WorkID:         workID,
		WorkerID:       workerID,
		SubmissionText: text,
		SubmittedAt:    time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return nil, err
	}

	return submission, nil
}

// UpdateText replaces the submission text and reports how many rows changed.
// Zero rows is not an error: the id may not exist or the text may be identical.
func (r *SubmissionRepository) UpdateText(ctx context.Context, id uint, text string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Submission{}).
		Where("id = ?", id).
		Update("submission_text", text)
	return res.RowsAffected, res.Error
}

func (r *SubmissionRepository) ListByWorker(ctx context.Context, workerID uint) ([]dto.SubmissionWithTitle, error) {
	var rows []dto.SubmissionWithTitle
	err := r.db.WithContext(ctx).Model(&model.Submission{}).
		Select("submissions.id as submission_id, submissions.work_id, tasks.title as task_title, submissions.submission_text, submissions.submitted_at").
		Joins("JOIN tasks ON tasks.id = submissions.work_id").
		Where("submissions.worker_id = ?", workerID).
		Order("submissions.submitted_at desc").
		Scan(&rows).Error
	return rows, err
}

// WithTx returns a repository bound to the given transaction handle.
func (r *SubmissionRepository) WithTx(tx *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: tx}
}
