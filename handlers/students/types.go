package students

// Error messages for the student handlers
const (
	ErrFetchingStudents = "Failed to fetch students"
	ErrTeamRequired     = "A team ID is required when acting as admin"
)

// CreateStudentRequest model for adding a participant
type CreateStudentRequest struct {
	Name    string `json:"name" binding:"required"`
	ChestNo string `json:"chest_no" binding:"required"`
	TeamID  string `json:"team_id"`
}

// UpdateStudentRequest model for editing a participant
type UpdateStudentRequest struct {
	Name    string `json:"name"`
	ChestNo string `json:"chest_no"`
}
