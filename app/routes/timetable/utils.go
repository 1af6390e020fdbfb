package timetable

// ValidateTimeFormat checks zero-padded 24-hour "HH:MM".
func ValidateTimeFormat(timeStr string) bool {
	if len(timeStr) != 5 || timeStr[2] != ':' {
		return false
	}
	for i, ch := range timeStr {
		if i == 2 {
			continue
		}
		if ch < '0' || ch > '9' {
			return false
		}
	}
	hh := int(timeStr[0]-'0')*10 + int(timeStr[1]-'0')
	mm := int(timeStr[3]-'0')*10 + int(timeStr[4]-'0')
	return hh <= 23 && mm <= 59
}
