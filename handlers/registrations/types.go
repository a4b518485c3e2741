package registrations

// Error messages for the registration handlers
const (
	ErrFetchingRegistrations = "Failed to fetch registrations"
	ErrFetchingSchedule      = "Failed to fetch registration schedule"
)

// RegisterRequest model for registering a student for a program
type RegisterRequest struct {
	ProgramID string `json:"program_id" binding:"required"`
	StudentID string `json:"student_id" binding:"required"`
}

// UpdateScheduleRequest model for setting the registration window
type UpdateScheduleRequest struct {
	StartDateTime string `json:"start_date_time" binding:"required"`
	EndDateTime   string `json:"end_date_time" binding:"required"`
}

// ScheduleResponse carries the window bounds and its current state
type ScheduleResponse struct {
	StartDateTime string `json:"start_date_time"`
	EndDateTime   string `json:"end_date_time"`
	Open          bool   `json:"open"`
}
