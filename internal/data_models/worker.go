package dto

type RegisterWorkerRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GetProfileRequest struct {
	WorkerID int64 `json:"worker_id"`
}

// UpdateProfileRequest carries the mutable profile fields. Nil means
// "leave unchanged"; email and id are immutable after registration.
type UpdateProfileRequest struct {
	ID       int64   `json:"id"`
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}
