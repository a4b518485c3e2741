package models

// Result statuses
const (
    ResultPending  = "pending"
    ResultApproved = "approved"
    ResultRejected = "rejected"
)

// Result represents a jury-submitted program result. Only approved results
// are publicly visible and contribute to team and student point totals.
type Result struct {
    ID           string  `gorm:"type:uuid;primary_key" json:"id"`
    ProgramID    string  `gorm:"type:uuid;not null;index;column:program_id" json:"program_id"`
    ProgramName  string  `gorm:"type:varchar(100);not null;column:program_name" json:"program_name"`
    StudentID    string  `gorm:"type:uuid;not null;index;column:student_id" json:"student_id"`
    StudentName  string  `gorm:"type:varchar(100);not null;column:student_name" json:"student_name"`
    StudentChest string  `gorm:"type:varchar(20);not null;column:student_chest" json:"student_chest"`
    TeamID       string  `gorm:"type:uuid;not null;index;column:team_id" json:"team_id"`
    TeamName     string  `gorm:"type:varchar(100);not null;column:team_name" json:"team_name"`
    Position     int     `gorm:"not null;default:0" json:"position"`
    Grade        string  `gorm:"type:varchar(5)" json:"grade"`
    Points       int     `gorm:"not null;default:0" json:"points"`
    Status       string  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
    SubmittedBy  string  `gorm:"type:varchar(100);not null;column:submitted_by" json:"submitted_by"`
    CreatedAt    string  `gorm:"type:varchar(40);not null;column:created_at" json:"created_at"`
    DecidedAt    *string `gorm:"type:varchar(40);column:decided_at" json:"decided_at"`
}
