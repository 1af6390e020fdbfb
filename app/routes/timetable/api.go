package timetable

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sumanth2354/ITAttendance/app/config"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
)

func GetClassTimetableAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Class ID is required"})
	}

	periods, err := database.GetPeriodsByClass(config.GetDB(), classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch timetable"})
	}
	return c.JSON(fiber.Map{"success": true, "periods": periods, "count": len(periods)})
}

type periodRequest struct {
	ClassID      string  `json:"class_id" validate:"required,uuid"`
	DayOfWeek    int     `json:"day_of_week" validate:"required,min=1,max=7"`
	PeriodNumber int     `json:"period_number" validate:"required,min=1"`
	StartTime    string  `json:"start_time" validate:"required"`
	EndTime      string  `json:"end_time" validate:"required"`
	SubjectID    *string `json:"subject_id" validate:"omitempty,uuid"`
	TeacherID    *string `json:"teacher_id" validate:"omitempty,uuid"`
	IsBreak      bool    `json:"is_break"`
	BreakName    *string `json:"break_name"`
}

func (req *periodRequest) validate() error {
	if err := validator.New().Struct(req); err != nil {
		return err
	}
	if !ValidateTimeFormat(req.StartTime) || !ValidateTimeFormat(req.EndTime) {
		return errors.New("times must be zero-padded HH:MM")
	}
	if req.EndTime < req.StartTime {
		return errors.New("end time must not be before start time")
	}
	return nil
}

func CreatePeriodAPI(c *fiber.Ctx) error {
	var req periodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := req.validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	db := config.GetDB()
	if !req.IsBreak {
		conflict, err := database.CheckTimeConflict(db, req.TeacherID, req.ClassID, req.DayOfWeek, req.StartTime, req.EndTime, "")
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to check for time conflicts"})
		}
		if conflict {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "This window overlaps an existing period for the class or teacher"})
		}
	}

	period := &models.TimetablePeriod{
		ClassID:      req.ClassID,
		DayOfWeek:    req.DayOfWeek,
		PeriodNumber: req.PeriodNumber,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		SubjectID:    req.SubjectID,
		TeacherID:    req.TeacherID,
		IsBreak:      req.IsBreak,
		BreakName:    req.BreakName,
	}
	if err := database.CreatePeriod(db, period); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "This period number already exists for that day"})
		}
		log.Printf("Failed to create period: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create period"})
	}

	return c.JSON(fiber.Map{"success": true, "period": period})
}

func UpdatePeriodAPI(c *fiber.Ctx) error {
	periodID := c.Params("id")

	var req periodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := req.validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	db := config.GetDB()
	period, err := database.GetPeriodByID(db, periodID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Period not found"})
	}

	if !req.IsBreak {
		conflict, err := database.CheckTimeConflict(db, req.TeacherID, period.ClassID, req.DayOfWeek, req.StartTime, req.EndTime, periodID)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to check for time conflicts"})
		}
		if conflict {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "This window overlaps an existing period for the class or teacher"})
		}
	}

	period.DayOfWeek = req.DayOfWeek
	period.PeriodNumber = req.PeriodNumber
	period.StartTime = req.StartTime
	period.EndTime = req.EndTime
	period.SubjectID = req.SubjectID
	period.TeacherID = req.TeacherID
	period.IsBreak = req.IsBreak
	period.BreakName = req.BreakName

	if err := database.UpdatePeriod(db, period); err != nil {
		if errors.Is(err, database.ErrConflict) {
			return c.Status(409).JSON(fiber.Map{"success": false, "error": "This period number already exists for that day"})
		}
		log.Printf("Failed to update period %s: %v", periodID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update period"})
	}

	return c.JSON(fiber.Map{"success": true, "period": period})
}

// DeletePeriodAPI removes a period. Attendance records referencing it are
// removed by the foreign key cascade.
func DeletePeriodAPI(c *fiber.Ctx) error {
	periodID := c.Params("id")
	if err := database.DeletePeriod(config.GetDB(), periodID); err != nil {
		log.Printf("Failed to delete period %s: %v", periodID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete period"})
	}
	return c.JSON(fiber.Map{"success": true})
}
