package students

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

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware, auth.RoleMiddleware(models.RoleAdmin))
	students.Get("/", StudentsPage)

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/class/:classId", GetStudentsByClassAPI)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Error - IT Attendance",
			"CurrentPage":  "students",
			"ErrorCode":    "500",
			"ErrorTitle":   "Database Error",
			"ErrorMessage": "Failed to load classes.",
			"user":         user,
		})
	}

	return c.Render("students/index", fiber.Map{
		"Title":       "Students - IT Attendance",
		"CurrentPage": "students",
		"user":        user,
		"classes":     classes,
	})
}

func GetStudentsByClassAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Class ID is required"})
	}

	students, err := database.GetStudentsByClass(config.GetDB(), classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{"success": true, "students": students, "count": len(students)})
}

// CreateStudentAPI adds a student to a class. When a username and password
// are supplied a linked student login account is created too.
func CreateStudentAPI(c *fiber.Ctx) error {
	type StudentRequest struct {
		ClassID    string `json:"class_id" validate:"required,uuid"`
		RollNumber int    `json:"roll_number" validate:"required,min=1"`
		Name       string `json:"name" validate:"required"`
		Username   string `json:"username"`
		Password   string `json:"password" validate:"omitempty,min=8"`
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	db := config.GetDB()
	student := &models.Student{
		ClassID:    req.ClassID,
		RollNumber: req.RollNumber,
		Name:       req.Name,
	}

	if req.Username != "" && req.Password != "" {
		account := &models.User{
			Username: req.Username,
			Password: req.Password,
			Name:     req.Name,
			Role:     models.RoleStudent,
		}
		if err := database.CreateUser(db, account); err != nil {
			if errors.Is(err, database.ErrConflict) {
				return c.Status(409).JSON(fiber.Map{"success": false, "error": "This username is already taken"})
			}
			log.Printf("Failed to create student account: %v", err)
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create student account"})
		}
		student.UserID = &account.ID
	}

	if err := database.CreateStudent(db, student); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "This roll number is already taken in the class"})
		}
		log.Printf("Failed to create student: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create student"})
	}

	return c.JSON(fiber.Map{"success": true, "student": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")

	type UpdateRequest struct {
		RollNumber int    `json:"roll_number" validate:"required,min=1"`
		Name       string `json:"name" validate:"required"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	student, err := database.GetStudentByID(config.GetDB(), studentID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Student not found"})
	}

	student.RollNumber = req.RollNumber
	student.Name = req.Name
	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "This roll number is already taken in the class"})
		}
		log.Printf("Failed to update student %s: %v", studentID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"success": true, "student": student})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	studentID := c.Params("id")
	if err := database.DeleteStudent(config.GetDB(), studentID); err != nil {
		log.Printf("Failed to delete student %s: %v", studentID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete student"})
	}
	return c.JSON(fiber.Map{"success": true})
}
