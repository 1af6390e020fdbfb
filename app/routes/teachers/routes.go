package teachers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sumanth2354/ITAttendance/app/config"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
	"github.com/sumanth2354/ITAttendance/app/routes/auth"
)

func SetupTeachersRoutes(app *fiber.App) {
	teachers := app.Group("/teachers")
	teachers.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	teachers.Get("/", TeachersPage)

	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetAllTeachersAPI)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))
	api.Post("/", CreateTeacherAPI)
	api.Delete("/:id", DeactivateTeacherAPI)
}

func TeachersPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	teachers, err := database.GetAllTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - IT Attendance",
			"CurrentPage":  "teachers",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load teachers.",
			"user":         user,
		})
	}

	return c.Render("teachers/index", fiber.Map{
		"Title":       "Teachers - IT Attendance",
		"CurrentPage": "teachers",
		"user":        user,
		"teachers":    teachers,
	})
}

func GetAllTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetAllTeachers(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch teachers"})
	}
	return c.JSON(fiber.Map{"success": true, "teachers": teachers, "count": len(teachers)})
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	type TeacherRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
		Name     string `json:"name" validate:"required"`
	}

	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	teacher := &models.User{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.RoleTeacher,
	}
	if err := database.CreateUser(config.GetDB(), teacher); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "This username is already taken"})
		}
		log.Printf("Failed to create teacher: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create teacher"})
	}

	return c.JSON(fiber.Map{"success": true, "teacher": teacher})
}

func DeactivateTeacherAPI(c *fiber.Ctx) error {
	teacherID := c.Params("id")
	if err := database.DeactivateUser(config.GetDB(), teacherID); err != nil {
		log.Printf("Failed to deactivate teacher %s: %v", teacherID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to deactivate teacher"})
	}
	return c.JSON(fiber.Map{"success": true})
}
