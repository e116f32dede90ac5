package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "wtms.com/wtms/internal/data_models"
	apperrors "wtms.com/wtms/internal/errors"
	model "wtms.com/wtms/internal/models"
	"wtms.com/wtms/internal/http/validators"
	"wtms.com/wtms/internal/services"
)

type Handler struct {
	assignmentService *services.AssignmentService
	submissionService *services.SubmissionService
	workerService     *services.WorkerService
	authService       *services.AuthService
}

func NewHandler(
	assignmentService *services.AssignmentService,
	submissionService *services.SubmissionService,
	workerService *services.WorkerService,
	authService *services.AuthService,
) *Handler {
	return &Handler{
		assignmentService: assignmentService,
		submissionService: submissionService,
		workerService:     workerService,
		authService:       authService,
	}
}

func (h *Handler) AssignTask(c echo.Context) error {
	var req dto.AssignTaskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateAssignTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.assignmentService.AssignToWorker(
		c.Request().Context(), req.Title, req.Description, req.DueDate, uint(req.WorkerID),
	)
	if err != nil {
		return serviceError(err, "failed to assign task")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":            fmt.Sprintf("Task assigned successfully to worker ID: %d", task.AssignedTo),
		"task_id":            task.ID,
		"assigned_worker_id": task.AssignedTo,
	})
}

func (h *Handler) AssignRandomTask(c echo.Context) error {
	var req dto.AssignRandomTaskRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateAssignRandomTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.assignmentService.AssignToRandomWorker(
		c.Request().Context(), req.Title, req.Description, req.DueDate,
	)
	if err != nil {
		return serviceError(err, "failed to create and assign task")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": fmt.Sprintf("Task created and assigned to a random worker (ID: %d) successfully!", task.AssignedTo),
	})
}

func (h *Handler) ListTasks(c echo.Context) error {
	var req dto.ListTasksRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateWorkerID(req.WorkerID); err != nil {
		return err
	}

	tasks, err := h.assignmentService.ListWorkerTasks(c.Request().Context(), uint(req.WorkerID))
	if err != nil {
		return serviceError(err, "failed to list tasks")
	}

	message := "Tasks retrieved successfully."
	if len(tasks) == 0 {
		tasks = []model.Task{}
		message = "No tasks found for this worker."
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": message,
		"tasks":   tasks,
	})
}

func (h *Handler) SubmitWork(c echo.Context) error {
	var req dto.SubmitWorkRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateSubmitWorkRequest(&req); err != nil {
		return err
	}

	_, err := h.submissionService.SubmitWork(
		c.Request().Context(), uint(req.WorkID), uint(req.WorkerID), req.SubmissionText,
	)
	if err != nil {
		return serviceError(err, "failed to submit work")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Work submitted successfully and task status updated to completed!",
	})
}

func (h *Handler) EditSubmission(c echo.Context) error {
	var req dto.EditSubmissionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateEditSubmissionRequest(&req); err != nil {
		return err
	}

	changed, err := h.submissionService.EditSubmission(
		c.Request().Context(), uint(req.SubmissionID), req.UpdatedText,
	)
	if err != nil {
		return serviceError(err, "failed to update submission")
	}

	message := "Submission updated successfully!"
	if !changed {
		message = "No changes made to submission or submission not found."
	}

	return c.JSON(http.StatusOK, echo.Map{"message": message})
}

func (h *Handler) ListSubmissions(c echo.Context) error {
	var req dto.ListSubmissionsRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateWorkerID(req.WorkerID); err != nil {
		return err
	}

	submissions, err := h.submissionService.ListWorkerSubmissions(c.Request().Context(), uint(req.WorkerID))
	if err != nil {
		return serviceError(err, "failed to list submissions")
	}

	message := "Submissions retrieved successfully."
	if len(submissions) == 0 {
		submissions = []dto.SubmissionWithTitle{}
		message = "No submissions found for this worker."
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":     message,
		"submissions": submissions,
	})
}

func (h *Handler) RegisterWorker(c echo.Context) error {
	var req dto.RegisterWorkerRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateRegisterWorkerRequest(&req); err != nil {
		return err
	}

	_, err := h.workerService.Register(
		c.Request().Context(), req.FullName, req.Email, req.Password, req.Phone, req.Address,
	)
	if err != nil {
		return serviceError(err, "failed to register worker")
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Worker registered successfully!"})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	worker, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return serviceError(err, "failed to log in")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful!",
		"worker":  worker,
	})
}

func (h *Handler) GetProfile(c echo.Context) error {
	var req dto.GetProfileRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateWorkerID(req.WorkerID); err != nil {
		return err
	}

	worker, err := h.workerService.Profile(c.Request().Context(), uint(req.WorkerID))
	if err != nil {
		return serviceError(err, "failed to fetch profile")
	}

	return c.JSON(http.StatusOK, worker)
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := validators.ValidateUpdateProfileRequest(&req); err != nil {
		return err
	}

	changed, err := h.workerService.UpdateProfile(c.Request().Context(), req)
	if err != nil {
		return serviceError(err, "failed to update profile")
	}

	message := "Profile updated successfully!"
	if !changed {
		message = "No changes made to the profile or worker not found."
	}

	return c.JSON(http.StatusOK, echo.Map{"message": message})
}

// serviceError maps domain errors to their HTTP status; anything else is a
// storage or internal failure.
func serviceError(err error, fallback string) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(appErr.StatusCode, appErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}
