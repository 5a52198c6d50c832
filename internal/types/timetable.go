package types

// ScheduleSlot is one entry in a day's study plan.
type ScheduleSlot struct {
	Time      string   `json:"time"`
	Subject   string   `json:"subject"`
	Task      string   `json:"task"`
	Resources []string `json:"resources"`
}

// Schedule maps a weekday name ("Monday" .. "Sunday") to its ordered slots.
type Schedule map[string][]ScheduleSlot

// GeneratedTimetable is the shape the AI generation endpoint is expected to
// return. It is also the shape persisted into Timetable.Schedule plus the
// surrounding title/description/goals columns.
type GeneratedTimetable struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Goals       []string `json:"goals"`
	Schedule    Schedule `json:"schedule"`
}
