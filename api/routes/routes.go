package routes

import (
	"time"

	"attendra/api/handler"
	"attendra/api/middleware"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo           *echo.Echo
	Attendance     *handler.AttendanceHandler
	Auth           *handler.AuthHandler
	Reminders      *handler.ReminderHandler
	Schedules      *handler.ScheduleHandler
	AuthMiddleware middleware.AuthMiddleware
	LoginRate      *middleware.RateLimiter
	CheckInRate    *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	attendance *handler.AttendanceHandler,
	auth *handler.AuthHandler,
	reminders *handler.ReminderHandler,
	schedules *handler.ScheduleHandler,
	authMiddleware middleware.AuthMiddleware,
) *Router {
	return &Router{
		Echo:           e,
		Attendance:     attendance,
		Auth:           auth,
		Reminders:      reminders,
		Schedules:      schedules,
		AuthMiddleware: authMiddleware,
		LoginRate:      middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
		CheckInRate:    middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	e := r.Echo
	requireAuth := r.AuthMiddleware.RequireAuth

	e.POST("/users/signup", r.Auth.Signup, r.LoginRate.Middleware())
	e.POST("/users/login", r.Auth.Login, r.LoginRate.Middleware())
	e.GET("/users", r.Auth.ListUsers, requireAuth, middleware.RequireRole("admin"))

	e.POST("/attendance/create-session", r.Attendance.CreateSession, requireAuth, middleware.RequireRole("teacher", "admin"))
	e.POST("/attendance/check-attendance", r.Attendance.CheckIn, r.CheckInRate.Middleware())
	e.POST("/attendance/get-attendance", r.Attendance.GetAttendanceByCriteria, requireAuth)
	e.GET("/attendance/session/:sessionId", r.Attendance.GetAttendanceBySession, requireAuth)
	e.GET("/attendance/active-session-students/:sessionId", r.Attendance.ListActiveSessionStudents, requireAuth)
	e.GET("/attendance/names", r.Attendance.ListSessionNames, requireAuth)
	e.POST("/attendance/session/:sessionId/students/:studentId", r.Attendance.AddStudent, requireAuth, middleware.RequireRole("teacher", "admin"))
	e.DELETE("/attendance/session/:sessionId/students/:studentId", r.Attendance.RemoveStudent, requireAuth, middleware.RequireRole("teacher", "admin"))

	e.GET("/reminders", r.Reminders.List, requireAuth)
	e.GET("/reminders/user/:userId", r.Reminders.ListByUser, requireAuth)
	e.POST("/reminders", r.Reminders.Create, requireAuth)
	e.PATCH("/reminders/:id", r.Reminders.Update, requireAuth)
	e.DELETE("/reminders/:id", r.Reminders.Delete, requireAuth)

	e.GET("/schedules", r.Schedules.List, requireAuth)
	e.GET("/schedules/linked-student/:parentId", r.Schedules.ListForGuardian, requireAuth)
}
