package timetable

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sumanth2354/ITAttendance/app/config"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
	"github.com/sumanth2354/ITAttendance/app/routes/auth"
)

func SetupTimetableRoutes(app *fiber.App) {
	timetable := app.Group("/timetable")
	timetable.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin, models.RoleTeacher))
	timetable.Get("/class/:classId", TimetablePage)

	api := app.Group("/api/timetable")
	api.Use(auth.AuthMiddleware)
	api.Get("/class/:classId", GetClassTimetableAPI)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))
	api.Post("/", CreatePeriodAPI)
	api.Put("/:id", UpdatePeriodAPI)
	api.Delete("/:id", DeletePeriodAPI)
}

func TimetablePage(c *fiber.Ctx) error {
	classID := c.Params("classId")
	user := c.Locals("user").(*models.User)
	db := config.GetDB()

	class, err := database.GetClassByID(db, classID)
	if err != nil {
		return c.Status(404).Render("error", fiber.Map{
			"Title":        "Class Not Found - IT Attendance",
			"CurrentPage":  "timetable",
			"ErrorCode":    "404",
			"ErrorTitle":   "Class Not Found",
			"ErrorMessage": "The requested class could not be found.",
			"user":         user,
		})
	}

	periods, err := database.GetPeriodsByClass(db, classID)
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - IT Attendance",
			"CurrentPage":  "timetable",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load the timetable.",
			"user":         user,
		})
	}

	subjects, _ := database.GetAllSubjects(db)
	teachers, _ := database.GetAllTeachers(db)

	return c.Render("timetable/index", fiber.Map{
		"Title":       "Timetable - " + class.Name + " - IT Attendance",
		"CurrentPage": "timetable",
		"user":        user,
		"class":       class,
		"periods":     periods,
		"subjects":    subjects,
		"teachers":    teachers,
	})
}
