package attendance

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sumanth2354/ITAttendance/app/config"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
	"github.com/sumanth2354/ITAttendance/app/services"
)

// MarkAttendanceAPI records one status for a student. The period is resolved
// from the live clock; outside the teacher's scheduled window the request
// fails with a NoActivePeriod message.
func MarkAttendanceAPI(c *fiber.Ctx) error {
	type MarkRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		ClassID   string `json:"class_id" validate:"required,uuid"`
		Status    string `json:"status" validate:"required,oneof=present absent"`
		Date      string `json:"date" validate:"required"`
	}

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid date format. Use YYYY-MM-DD"})
	}

	user := c.Locals("user").(*models.User)

	rec, err := services.MarkAttendance(
		config.GetDB(), config.GetClock(),
		req.StudentID, req.ClassID, models.AttendanceStatus(req.Status), date, user.ID,
	)
	if errors.Is(err, services.ErrNoActivePeriod) {
		return c.JSON(fiber.Map{
			"success": false,
			"error":   "You have no active period in this class right now. Wait for your scheduled period.",
		})
	}
	if err != nil {
		log.Printf("MarkAttendance failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save attendance record"})
	}

	return c.JSON(fiber.Map{"success": true, "attendance": rec})
}

// BulkUpdateAttendanceAPI applies historical edits without period
// attribution: an empty status deletes that day's record.
func BulkUpdateAttendanceAPI(c *fiber.Ctx) error {
	type BulkChange struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		Date      string `json:"date" validate:"required"`
		Status    string `json:"status" validate:"omitempty,oneof=present absent"`
	}
	type BulkRequest struct {
		ClassID string       `json:"class_id" validate:"required,uuid"`
		Changes []BulkChange `json:"changes" validate:"required,min=1,dive"`
	}

	var req BulkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	changes := make([]services.BulkChange, 0, len(req.Changes))
	for _, change := range req.Changes {
		date, err := time.Parse("2006-01-02", change.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid date format. Use YYYY-MM-DD"})
		}
		changes = append(changes, services.BulkChange{
			StudentID: change.StudentID,
			Date:      date,
			Status:    models.AttendanceStatus(change.Status),
		})
	}

	user := c.Locals("user").(*models.User)

	updated, err := services.ApplyBulkChanges(config.GetDB(), req.ClassID, changes, user.ID)
	if err != nil {
		log.Printf("Bulk attendance update failed after %d changes: %v", updated, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to apply attendance changes"})
	}

	return c.JSON(fiber.Map{"success": true, "updated_count": updated})
}

// GetTodayRosterAPI returns the class roster with today's statuses for the
// requesting teacher's active period.
func GetTodayRosterAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Class ID is required"})
	}

	user := c.Locals("user").(*models.User)
	db := config.GetDB()
	clk := config.GetClock()

	students, err := database.GetStudentsByClass(db, classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch students"})
	}

	period, err := services.CurrentPeriod(db, clk, classID, user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to resolve current period"})
	}

	statuses := map[string]models.AttendanceStatus{}
	if period != nil {
		statuses, err = database.GetStatusesForPeriodDate(db, period.ID, clk.Today())
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to fetch attendance records"})
		}
	}

	roster := make([]*models.RosterEntry, 0, len(students))
	for _, student := range students {
		status, marked := statuses[student.ID]
		roster = append(roster, &models.RosterEntry{Student: *student, Status: status, Marked: marked})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"roster":         roster,
		"current_period": period,
		"date":           clk.Today().Format("2006-01-02"),
	})
}

// GetCurrentPeriodAPI resolves the teacher's active period in a class.
// No active period is a normal answer, not an error.
func GetCurrentPeriodAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Class ID is required"})
	}

	user := c.Locals("user").(*models.User)

	period, err := services.CurrentPeriod(config.GetDB(), config.GetClock(), classID, user.ID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to resolve current period"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"active":  period != nil,
		"period":  period,
	})
}

func CreateBookmarkAPI(c *fiber.Ctx) error {
	type BookmarkRequest struct {
		ClassID     string `json:"class_id" validate:"required,uuid"`
		Date        string `json:"date" validate:"required"`
		Title       string `json:"title" validate:"required"`
		Description string `json:"description"`
	}

	var req BookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}
	if err := validator.New().Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request: " + err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid date format. Use YYYY-MM-DD"})
	}

	user := c.Locals("user").(*models.User)

	bookmark := &models.Bookmark{
		ClassID:     req.ClassID,
		Date:        date,
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   &user.ID,
	}
	if err := database.UpsertBookmark(config.GetDB(), bookmark); err != nil {
		log.Printf("Failed to save bookmark: %v", err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to save bookmark"})
	}

	return c.JSON(fiber.Map{"success": true, "bookmark": bookmark})
}

func DeleteBookmarkAPI(c *fiber.Ctx) error {
	bookmarkID := c.Params("id")
	if bookmarkID == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Bookmark ID is required"})
	}

	if err := database.DeleteBookmark(config.GetDB(), bookmarkID); err != nil {
		log.Printf("Failed to delete bookmark %s: %v", bookmarkID, err)
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete bookmark"})
	}

	return c.JSON(fiber.Map{"success": true})
}
