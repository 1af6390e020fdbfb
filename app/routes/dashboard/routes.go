package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sumanth2354/ITAttendance/app/config"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
	"github.com/sumanth2354/ITAttendance/app/routes/auth"
	"github.com/sumanth2354/ITAttendance/app/services"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")
	dashboard.Use(auth.AuthMiddleware)
	dashboard.Get("/", DashboardPage)

	student := app.Group("/student")
	student.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleStudent))
	student.Get("/", StudentHomePage)
}

// DashboardPage routes each role to its home view.
func DashboardPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	switch user.Role {
	case models.RoleAdmin:
		return adminDashboard(c, user)
	case models.RoleStudent:
		return c.Redirect("/student")
	default:
		return teacherDashboard(c, user)
	}
}

// teacherDashboard lists the teacher's classes with their schedule in each,
// the currently active period and today's marking tallies.
func teacherDashboard(c *fiber.Ctx, user *models.User) error {
	db := config.GetDB()
	clk := config.GetClock()

	classes, err := database.GetClassesForTeacher(db, user.ID)
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - IT Attendance",
			"CurrentPage":  "dashboard",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load your classes.",
			"user":         user,
		})
	}

	schedules := make([]*models.ClassSchedule, 0, len(classes))
	for _, class := range classes {
		schedule := &models.ClassSchedule{Class: *class}

		schedule.Periods, err = database.GetTeacherPeriodsForDay(db, class.ID, user.ID, clk.DayOfWeek())
		if err != nil {
			continue
		}
		schedule.Current = services.MatchPeriod(schedule.Periods, clk.TimeOfDay())

		if schedule.Current != nil {
			present, absent, err := database.GetPeriodDayCounts(db, schedule.Current.ID, clk.Today())
			if err == nil {
				schedule.TodayPresent = present
				schedule.TodayAbsent = absent
			}
		}
		schedules = append(schedules, schedule)
	}

	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - IT Attendance",
		"CurrentPage": "dashboard",
		"user":        user,
		"schedules":   schedules,
		"today":       clk.Today().Format("2006-01-02"),
		"timeOfDay":   clk.TimeOfDay(),
	})
}

func adminDashboard(c *fiber.Ctx, user *models.User) error {
	db := config.GetDB()

	stats := &models.DashboardStats{}
	queries := []struct {
		dest  *int
		query string
	}{
		{&stats.TotalClasses, "SELECT COUNT(*) FROM classes"},
		{&stats.TotalStudents, "SELECT COUNT(*) FROM students"},
		{&stats.TotalTeachers, "SELECT COUNT(*) FROM users WHERE role = 'teacher' AND is_active = true"},
		{&stats.TotalSubjects, "SELECT COUNT(*) FROM subjects"},
	}
	for _, q := range queries {
		if err := db.QueryRow(q.query).Scan(q.dest); err != nil {
			return c.Status(500).Render("error", fiber.Map{
				"Title":        "Error - IT Attendance",
				"CurrentPage":  "dashboard",
				"ErrorCode":    "500",
				"ErrorTitle":   "Database Error",
				"ErrorMessage": "Failed to load dashboard statistics.",
				"user":         user,
			})
		}
	}

	if marked, err := database.CountRecordsForDate(db, config.GetClock().Today()); err == nil {
		stats.MarkedToday = marked
	}

	return c.Render("dashboard/admin", fiber.Map{
		"Title":       "Admin Dashboard - IT Attendance",
		"CurrentPage": "dashboard",
		"user":        user,
		"stats":       stats,
	})
}

// StudentHomePage shows a student their own all-time attendance summary
// across every teacher's periods.
func StudentHomePage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	student, err := database.GetStudentByUserID(db, user.ID)
	if err != nil {
		return c.Status(404).Render("error", fiber.Map{
			"Title":        "Not Found - IT Attendance",
			"CurrentPage":  "student",
			"ErrorCode":    "404",
			"ErrorTitle":   "Student Record Not Found",
			"ErrorMessage": "Your account is not linked to a student record.",
			"user":         user,
		})
	}

	summary, err := services.BuildStudentSummary(db, student)
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - IT Attendance",
			"CurrentPage":  "student",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load your attendance.",
			"user":         user,
		})
	}

	return c.Render("student/home", fiber.Map{
		"Title":       "My Attendance - IT Attendance",
		"CurrentPage": "student",
		"user":        user,
		"student":     student,
		"summary":     summary,
	})
}
