package subjects

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

func SetupSubjectsRoutes(app *fiber.App) {
	subjects := app.Group("/subjects")
	subjects.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	subjects.Get("/", SubjectsPage)

	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetAllSubjectsAPI)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))
	api.Post("/", CreateSubjectAPI)
	api.Put("/:id", UpdateSubjectAPI)
	api.Delete("/:id", DeleteSubjectAPI)
}

func SubjectsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	subjects, err := database.GetAllSubjects(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - IT Attendance",
			"CurrentPage":  "subjects",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load subjects.",
			"user":         user,
		})
	}

	return c.Render("subjects/index", fiber.Map{
		"Title":       "Subjects - IT Attendance",
		"CurrentPage": "subjects",
		"user":        user,
		"subjects":    subjects,
	})
}

func GetAllSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := database.GetAllSubjects(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch subjects"})
	}
	return c.JSON(fiber.Map{"success": true, "subjects": subjects, "count": len(subjects)})
}

type subjectRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	subject := &models.Subject{Name: req.Name, Code: req.Code}
	if err := database.CreateSubject(config.GetDB(), subject); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "A subject with this code already exists"})
		}
		log.Printf("Failed to create subject: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create subject"})
	}

	return c.JSON(fiber.Map{"success": true, "subject": subject})
}

func UpdateSubjectAPI(c *fiber.Ctx) error {
	subjectID := c.Params("id")

	var req subjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	subject := &models.Subject{ID: subjectID, Name: req.Name, Code: req.Code}
	if err := database.UpdateSubject(config.GetDB(), subject); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "A subject with this code already exists"})
		}
		log.Printf("Failed to update subject %s: %v", subjectID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update subject"})
	}

	return c.JSON(fiber.Map{"success": true, "subject": subject})
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	subjectID := c.Params("id")
	if err := database.DeleteSubject(config.GetDB(), subjectID); err != nil {
		log.Printf("Failed to delete subject %s: %v", subjectID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete subject"})
	}
	return c.JSON(fiber.Map{"success": true})
}
