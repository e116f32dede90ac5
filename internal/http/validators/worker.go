package validators

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	dto "wtms.com/wtms/internal/data_models"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidateRegisterWorkerRequest(r *dto.RegisterWorkerRequest) error {
	if r.FullName == "" || r.Email == "" || r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "full name, email and password are required")
	}
	if !emailPattern.MatchString(r.Email) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid email format")
	}
	if len(r.Password) < minPasswordLength {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters long")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Email == "" || r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "please enter both email and password")
	}
	return nil
}

func ValidateUpdateProfileRequest(r *dto.UpdateProfileRequest) error {
	if r.ID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "worker ID is required and must be a positive integer")
	}
	if r.FullName == nil && r.Phone == nil && r.Address == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no fields provided for update")
	}
	return nil
}
