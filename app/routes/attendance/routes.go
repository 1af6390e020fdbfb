package attendance

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sumanth2354/ITAttendance/app/config"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
	"github.com/sumanth2354/ITAttendance/app/routes/auth"
	"github.com/sumanth2354/ITAttendance/app/services"
)

func SetupAttendanceRoutes(app *fiber.App) {
	attendance := app.Group("/attendance")
	attendance.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleTeacher, models.RoleAdmin))

	attendance.Get("/", AttendancePage)
	attendance.Get("/class/:classId", AttendanceByClassPage)
	attendance.Get("/class/:classId/history", AttendanceHistoryPage)
	attendance.Get("/class/:classId/reports", AttendanceReportsPage)

	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleTeacher, models.RoleAdmin))
	api.Post("/mark", MarkAttendanceAPI)
	api.Post("/bulk", BulkUpdateAttendanceAPI)
	api.Get("/class/:classId/today", GetTodayRosterAPI)
	api.Get("/current-period/:classId", GetCurrentPeriodAPI)

	bookmarks := app.Group("/api/bookmarks")
	bookmarks.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleTeacher, models.RoleAdmin))
	bookmarks.Post("/", CreateBookmarkAPI)
	bookmarks.Delete("/:id", DeleteBookmarkAPI)
}

func renderError(c *fiber.Ctx, code int, title, message string) error {
	return c.Status(code).Render("error", fiber.Map{
		"Title":        title + " - IT Attendance",
		"CurrentPage":  "attendance",
		"ErrorCode":    code,
		"ErrorTitle":   title,
		"ErrorMessage": message,
		"user":         c.Locals("user"),
	})
}

func AttendancePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	classes, err := database.GetClassesForTeacher(config.GetDB(), user.ID)
	if err != nil {
		return renderError(c, 500, "Database Error", "Failed to load your classes.")
	}

	return c.Render("attendance/index", fiber.Map{
		"Title":       "Attendance - IT Attendance",
		"CurrentPage": "attendance",
		"user":        user,
		"classes":     classes,
	})
}

// AttendanceByClassPage shows the roster with today's statuses for the
// teacher's currently active period, or an unmarked roster if none is
// active.
func AttendanceByClassPage(c *fiber.Ctx) error {
	classID := c.Params("classId")
	user := c.Locals("user").(*models.User)
	db := config.GetDB()
	clk := config.GetClock()

	class, err := database.GetClassByID(db, classID)
	if err != nil {
		return renderError(c, 404, "Class Not Found", "The requested class could not be found.")
	}

	students, err := database.GetStudentsByClass(db, classID)
	if err != nil {
		return renderError(c, 500, "Database Error", "Failed to load students for this class.")
	}

	period, err := services.CurrentPeriod(db, clk, classID, user.ID)
	if err != nil {
		return renderError(c, 500, "Database Error", "Failed to resolve the current period.")
	}

	statuses := map[string]models.AttendanceStatus{}
	if period != nil {
		statuses, err = database.GetStatusesForPeriodDate(db, period.ID, clk.Today())
		if err != nil {
			return renderError(c, 500, "Database Error", "Failed to load attendance records.")
		}
	}

	roster := make([]*models.RosterEntry, 0, len(students))
	for _, student := range students {
		status, marked := statuses[student.ID]
		roster = append(roster, &models.RosterEntry{Student: *student, Status: status, Marked: marked})
	}

	return c.Render("attendance/class", fiber.Map{
		"Title":         "Attendance for " + class.Name + " - IT Attendance",
		"CurrentPage":   "attendance",
		"user":          user,
		"class":         class,
		"roster":        roster,
		"currentPeriod": period,
		"today":         clk.Today().Format("2006-01-02"),
	})
}

func AttendanceHistoryPage(c *fiber.Ctx) error {
	classID := c.Params("classId")
	view := c.Query("view", services.ViewWeek)
	dateStr := c.Query("date")

	user := c.Locals("user").(*models.User)
	db := config.GetDB()
	clk := config.GetClock()

	refDate := clk.Today()
	if dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return renderError(c, 400, "Invalid Date", "The provided date format is invalid.")
		}
		refDate = parsed
	}

	class, err := database.GetClassByID(db, classID)
	if err != nil {
		return renderError(c, 404, "Class Not Found", "The requested class could not be found.")
	}

	grid, err := services.BuildHistoryGrid(db, classID, user.ID, view, refDate)
	if err != nil {
		return renderError(c, 500, "Database Error", "Failed to build the attendance history.")
	}

	return c.Render("attendance/history", fiber.Map{
		"Title":       "Attendance History - " + class.Name + " - IT Attendance",
		"CurrentPage": "attendance",
		"user":        user,
		"class":       class,
		"grid":        grid,
	})
}

func AttendanceReportsPage(c *fiber.Ctx) error {
	classID := c.Params("classId")
	period := c.Query("period", services.ReportWeek)

	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	class, err := database.GetClassByID(db, classID)
	if err != nil {
		return renderError(c, 404, "Class Not Found", "The requested class could not be found.")
	}

	report, err := services.BuildReport(db, config.GetClock(), classID, user.ID, period)
	if err != nil {
		return renderError(c, 500, "Database Error", "Failed to build the attendance report.")
	}

	return c.Render("attendance/reports", fiber.Map{
		"Title":       "Attendance Reports - " + class.Name + " - IT Attendance",
		"CurrentPage": "attendance",
		"user":        user,
		"class":       class,
		"period":      period,
		"report":      report,
	})
}
