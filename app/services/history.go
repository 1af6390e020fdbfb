package services

import (
	"database/sql"
	"time"

	"github.com/sumanth2354/ITAttendance/app/clock"
	"github.com/sumanth2354/ITAttendance/app/database"
	"github.com/sumanth2354/ITAttendance/app/models"
)

// History views.
const (
	ViewWeek  = "week"
	ViewMonth = "month"
)

// GeneralCell keys the fallback cell used when a date's weekday has no
// scheduled periods, or a record's period is not in the teacher's schedule.
const GeneralCell = "general"

const dateLayout = "2006-01-02"

// GridDate is one column of the history grid.
type GridDate struct {
	Date    time.Time `json:"-"`
	ISO     string    `json:"date"`
	Weekday string    `json:"weekday"`
	Day     int       `json:"day"`
}

// HistoryGrid maps student -> date -> (period id or "general") -> status.
// An empty status means the cell exists but nothing was marked.
type HistoryGrid struct {
	View     string                                                `json:"view"`
	Dates    []GridDate                                            `json:"dates"`
	Students []*models.Student                                     `json:"students"`
	Periods  []*models.TimetablePeriod                             `json:"periods"`
	Cells    map[string]map[string]map[string]models.AttendanceStatus `json:"cells"`
	Bookmarks []*models.Bookmark                                   `json:"bookmarks"`
	PrevDate string                                                `json:"prev_date"`
	NextDate string                                                `json:"next_date"`
}

// WeekWindow returns the Monday and Sunday of the week containing ref.
// A Sunday reference still belongs to the week begun the preceding Monday.
func WeekWindow(ref time.Time) (start, end time.Time) {
	ref = midnight(ref)
	start = ref.AddDate(0, 0, -(clock.DayOfWeek(ref) - 1))
	end = start.AddDate(0, 0, 6)
	return start, end
}

// MonthWindow returns the first and last day of ref's calendar month.
func MonthWindow(ref time.Time) (start, end time.Time) {
	start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	end = start.AddDate(0, 1, -1)
	return start, end
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// enumerateDates lists every day in [start, end].
func enumerateDates(start, end time.Time) []GridDate {
	var dates []GridDate
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, GridDate{
			Date:    d,
			ISO:     d.Format(dateLayout),
			Weekday: d.Format("Mon"),
			Day:     d.Day(),
		})
	}
	return dates
}

// BuildHistoryGrid assembles the attendance matrix for a class over the week
// or month containing refDate, restricted to the teacher's own periods.
// Every student gets one cell per period scheduled on each date's weekday,
// or a single general cell when that weekday has no periods; actual records
// are then overlaid. Empty classes or windows yield an empty grid.
func BuildHistoryGrid(db *sql.DB, classID, teacherID, view string, refDate time.Time) (*HistoryGrid, error) {
	if view != ViewMonth {
		view = ViewWeek
	}

	var start, end time.Time
	var prev, next time.Time
	if view == ViewMonth {
		start, end = MonthWindow(refDate)
		prev = start.AddDate(0, -1, 0)
		next = start.AddDate(0, 1, 0)
	} else {
		start, end = WeekWindow(refDate)
		prev = start.AddDate(0, 0, -7)
		next = start.AddDate(0, 0, 7)
	}

	students, err := database.GetStudentsByClass(db, classID)
	if err != nil {
		return nil, err
	}
	periods, err := database.GetTeacherPeriodsInClass(db, classID, teacherID)
	if err != nil {
		return nil, err
	}
	records, err := database.GetHistoryRecords(db, classID, start, end)
	if err != nil {
		return nil, err
	}
	bookmarks, err := database.GetBookmarksForWindow(db, classID, start, end)
	if err != nil {
		return nil, err
	}

	grid := &HistoryGrid{
		View:      view,
		Dates:     enumerateDates(start, end),
		Students:  students,
		Periods:   periods,
		Cells:     buildCells(students, periods, grouped(records), enumerateDates(start, end)),
		Bookmarks: bookmarks,
		PrevDate:  prev.Format(dateLayout),
		NextDate:  next.Format(dateLayout),
	}
	return grid, nil
}

func grouped(records []*models.HistoryRecord) map[string]map[string][]*models.HistoryRecord {
	// student -> date -> records
	byStudent := make(map[string]map[string][]*models.HistoryRecord)
	for _, rec := range records {
		day := rec.Date.Format(dateLayout)
		if byStudent[rec.StudentID] == nil {
			byStudent[rec.StudentID] = make(map[string][]*models.HistoryRecord)
		}
		byStudent[rec.StudentID][day] = append(byStudent[rec.StudentID][day], rec)
	}
	return byStudent
}

func buildCells(
	students []*models.Student,
	periods []*models.TimetablePeriod,
	records map[string]map[string][]*models.HistoryRecord,
	dates []GridDate,
) map[string]map[string]map[string]models.AttendanceStatus {
	periodsByDay := make(map[int][]*models.TimetablePeriod)
	for _, p := range periods {
		periodsByDay[p.DayOfWeek] = append(periodsByDay[p.DayOfWeek], p)
	}

	cells := make(map[string]map[string]map[string]models.AttendanceStatus)
	for _, student := range students {
		cells[student.ID] = make(map[string]map[string]models.AttendanceStatus)
		for _, date := range dates {
			cell := make(map[string]models.AttendanceStatus)
			scheduled := periodsByDay[clock.DayOfWeek(date.Date)]
			if len(scheduled) == 0 {
				cell[GeneralCell] = ""
			} else {
				for _, p := range scheduled {
					cell[p.ID] = ""
				}
			}
			cells[student.ID][date.ISO] = cell
		}
	}

	// Overlay actual records. A record whose period is not a seeded cell for
	// that date (another teacher's period, or no period at all) lands in the
	// general cell.
	for studentID, byDate := range records {
		student, ok := cells[studentID]
		if !ok {
			continue
		}
		for day, recs := range byDate {
			cell, ok := student[day]
			if !ok {
				continue
			}
			for _, rec := range recs {
				key := GeneralCell
				if rec.PeriodID != nil {
					if _, seeded := cell[*rec.PeriodID]; seeded {
						key = *rec.PeriodID
					}
				}
				cell[key] = rec.Status
			}
		}
	}
	return cells
}
