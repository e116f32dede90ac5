package validators

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	dto "wtms.com/wtms/internal/data_models"
)

var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func ValidateAssignTaskRequest(r *dto.AssignTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if err := validateDueDate(r.DueDate); err != nil {
		return err
	}
	if r.WorkerID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid worker ID, must be a positive integer")
	}
	return nil
}

func ValidateAssignRandomTaskRequest(r *dto.AssignRandomTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	return validateDueDate(r.DueDate)
}

func validateDueDate(dueDate string) error {
	if dueDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "due date is required")
	}
	if !dueDatePattern.MatchString(dueDate) {
		return echo.NewHTTPError(http.StatusBadRequest, "due date format must be YYYY-MM-DD")
	}
	return nil
}

func ValidateWorkerID(id int64) error {
	if id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "worker ID is required and must be a positive integer")
	}
	return nil
}
