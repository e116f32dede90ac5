package dto

import "time"

type SubmitWorkRequest struct {
	WorkID         int64  `json:"work_id"`
	WorkerID       int64  `json:"worker_id"`
	SubmissionText string `json:"submission_text"`
}

type EditSubmissionRequest struct {
	SubmissionID int64  `json:"submission_id"`
	UpdatedText  string `json:"updated_text"`
}

type ListSubmissionsRequest struct {
	WorkerID int64 `json:"worker_id"`
}

// SubmissionWithTitle is one row of the submission history listing,
// joined with the title of the task it was submitted against.
type SubmissionWithTitle struct {
	SubmissionID   uint      `json:"submission_id"`
	WorkID         uint      `json:"work_id"`
	TaskTitle      string    `json:"task_title"`
	SubmissionText string    `json:"submission_text"`
	SubmittedAt    time.Time `json:"submitted_at"`
}
