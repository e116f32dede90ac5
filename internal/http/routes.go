package http

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	middleware "wtms.com/wtms/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimiter echo.MiddlewareFunc) {
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(rateLimiter)

	e.POST("/workers/register", h.RegisterWorker)
	e.POST("/workers/login", h.Login)
	e.POST("/workers/profile", h.GetProfile)
	e.POST("/workers/profile/update", h.UpdateProfile)

	e.POST("/tasks/assign", h.AssignTask)
	e.POST("/tasks/assign/random", h.AssignRandomTask)
	e.POST("/tasks/list", h.ListTasks)

	e.POST("/submissions/submit", h.SubmitWork)
	e.POST("/submissions/edit", h.EditSubmission)
	e.POST("/submissions/list", h.ListSubmissions)
}
