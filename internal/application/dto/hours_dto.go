package dto

// DayHoursRequest one weekday's schedule. DayOfWeek 0 = Sunday.
type DayHoursRequest struct {
	DayOfWeek  int     `json:"day_of_week"`
	IsOpen     bool    `json:"is_open"`
	OpenTime   string  `json:"open_time"`
	CloseTime  string  `json:"close_time"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
}

// ReplaceHoursRequest full-week replacement; must cover all seven days.
type ReplaceHoursRequest struct {
	Days []DayHoursRequest `json:"days"`
}

// DayHoursResponse one weekday's schedule as stored.
type DayHoursResponse struct {
	DayOfWeek  int     `json:"day_of_week"`
	IsOpen     bool    `json:"is_open"`
	OpenTime   string  `json:"open_time,omitempty"`
	CloseTime  string  `json:"close_time,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
}

// HoursResponse the week schedule plus the live open/closed state.
type HoursResponse struct {
	Days       []DayHoursResponse `json:"days"`
	IsOpen     bool               `json:"is_open"`
	Status     string             `json:"status"`
	NextChange string             `json:"next_change,omitempty"` // HH:MM
}
