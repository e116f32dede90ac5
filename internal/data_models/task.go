package dto

type AssignTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	WorkerID    int64  `json:"worker_id"`
}

type AssignRandomTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

type ListTasksRequest struct {
	WorkerID int64 `json:"worker_id"`
}
