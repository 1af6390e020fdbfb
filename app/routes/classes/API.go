package classes

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sumanth2354/ITAttendance/app/config"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
)

func GetAllClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch classes"})
	}
	return c.JSON(fiber.Map{"success": true, "classes": classes, "count": len(classes)})
}

type classRequest struct {
	Name    string `json:"name" validate:"required"`
	Year    int    `json:"year" validate:"required,min=1,max=4"`
	Section string `json:"section" validate:"required"`
}

func CreateClassAPI(c *fiber.Ctx) error {
	var req classRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	class := &models.Class{Name: req.Name, Year: req.Year, Section: req.Section}
	if err := database.CreateClass(config.GetDB(), class); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "A class with this year and section already exists"})
		}
		log.Printf("Failed to create class: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create class"})
	}

	return c.JSON(fiber.Map{"success": true, "class": class})
}

func UpdateClassAPI(c *fiber.Ctx) error {
	classID := c.Params("id")

	var req classRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	class, err := database.GetClassByID(config.GetDB(), classID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Class not found"})
	}

	class.Name = req.Name
	class.Year = req.Year
	class.Section = req.Section
	if err := database.UpdateClass(config.GetDB(), class); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "A class with this year and section already exists"})
		}
		log.Printf("Failed to update class %s: %v", classID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update class"})
	}

	return c.JSON(fiber.Map{"success": true, "class": class})
}

func DeleteClassAPI(c *fiber.Ctx) error {
	classID := c.Params("id")
	if err := database.DeleteClass(config.GetDB(), classID); err != nil {
		log.Printf("Failed to delete class %s: %v", classID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete class"})
	}
	return c.JSON(fiber.Map{"success": true})
}
