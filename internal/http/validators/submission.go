package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "wtms.com/wtms/internal/data_models"
)

func ValidateSubmitWorkRequest(r *dto.SubmitWorkRequest) error {
	if r.WorkID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "work ID is required and must be a positive integer")
	}
	if r.WorkerID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "worker ID is required and must be a positive integer")
	}
	if r.SubmissionText == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "submission text is required")
	}
	return nil
}

func ValidateEditSubmissionRequest(r *dto.EditSubmissionRequest) error {
	if r.SubmissionID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "submission ID is required and must be a positive integer")
	}
	if r.UpdatedText == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "updated text is required")
	}
	return nil
}
