package classes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sumanth2354/ITAttendance/app/config"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
	"github.com/sumanth2354/ITAttendance/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App) {
	classes := app.Group("/classes")
	classes.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	classes.Get("/", ClassesPage)

	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetAllClassesAPI)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))
	api.Post("/", CreateClassAPI)
	api.Put("/:id", UpdateClassAPI)
	api.Delete("/:id", DeleteClassAPI)
}

func ClassesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - IT Attendance",
			"CurrentPage":  "classes",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load classes.",
			"user":         user,
		})
	}

	return c.Render("classes/index", fiber.Map{
		"Title":       "Classes - IT Attendance",
		"CurrentPage": "classes",
		"user":        user,
		"classes":     classes,
	})
}
