package models

// Replacement request statuses
const (
    RequestPending  = "pending"
    RequestApproved = "approved"
    RequestRejected = "rejected"
)

// ReplacementRequest is a team's post-window request to substitute one
// registered student for another in the same program. Student and program
// names are snapshotted at submission time.
type ReplacementRequest struct {
    ID              string  `gorm:"type:uuid;primary_key" json:"id"`
    ProgramID       string  `gorm:"type:uuid;not null;column:program_id" json:"program_id"`
    ProgramName     string  `gorm:"type:varchar(100);not null;column:program_name" json:"program_name"`
    OldStudentID    string  `gorm:"type:uuid;not null;column:old_student_id" json:"old_student_id"`
    OldStudentName  string  `gorm:"type:varchar(100);not null;column:old_student_name" json:"old_student_name"`
    OldStudentChest string  `gorm:"type:varchar(20);not null;column:old_student_chest" json:"old_student_chest"`
    NewStudentID    string  `gorm:"type:uuid;not null;column:new_student_id" json:"new_student_id"`
    NewStudentName  string  `gorm:"type:varchar(100);not null;column:new_student_name" json:"new_student_name"`
    NewStudentChest string  `gorm:"type:varchar(20);not null;column:new_student_chest" json:"new_student_chest"`
    TeamID          string  `gorm:"type:uuid;not null;index;column:team_id" json:"team_id"`
    TeamName        string  `gorm:"type:varchar(100);not null;column:team_name" json:"team_name"`
    Reason          string  `gorm:"type:varchar(500);not null" json:"reason"`
    Status          string  `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
    DecidedBy       *string `gorm:"type:varchar(100);column:decided_by" json:"decided_by"`
    DecidedAt       *string `gorm:"type:varchar(40);column:decided_at" json:"decided_at"`
    CreatedAt       string  `gorm:"type:varchar(40);not null;column:created_at" json:"created_at"`
}
