package model

import "time"

type Submission struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	WorkID         uint      `gorm:"index;not null" json:"work_id"`
	WorkerID       uint      `gorm:"index;not null" json:"worker_id"`
	SubmissionText string    `gorm:"not null" json:"submission_text"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
