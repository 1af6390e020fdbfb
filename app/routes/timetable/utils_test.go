package timetable

import "testing"

func TestValidateTimeFormat(t *testing.T) {
	valid := []string{"00:00", "09:05", "13:30", "23:59"}
	for _, s := range valid {
		if !ValidateTimeFormat(s) {
			t.Errorf("ValidateTimeFormat(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "9:05", "09:5", "24:00", "12:60", "ab:cd", "09-05", "09:055"}
	for _, s := range invalid {
		if ValidateTimeFormat(s) {
			t.Errorf("ValidateTimeFormat(%q) = true, want false", s)
		}
	}
}
