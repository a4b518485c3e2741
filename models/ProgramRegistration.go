package models

// ProgramRegistration links a student to a program for the festival.
// Program, student and team names are snapshotted at registration time so
// the record keeps displaying correctly even if the source entity changes
// or is deleted later.
type ProgramRegistration struct {
    ID           string `gorm:"type:uuid;primary_key" json:"id"`
    ProgramID    string `gorm:"type:uuid;not null;uniqueIndex:idx_program_student;column:program_id" json:"program_id"`
    ProgramName  string `gorm:"type:varchar(100);not null;column:program_name" json:"program_name"`
    StudentID    string `gorm:"type:uuid;not null;uniqueIndex:idx_program_student;column:student_id" json:"student_id"`
    StudentName  string `gorm:"type:varchar(100);not null;column:student_name" json:"student_name"`
    StudentChest string `gorm:"type:varchar(20);not null;column:student_chest" json:"student_chest"`
    TeamID       string `gorm:"type:uuid;not null;index;column:team_id" json:"team_id"`
    TeamName     string `gorm:"type:varchar(100);not null;column:team_name" json:"team_name"`
    Timestamp    string `gorm:"type:varchar(40);not null" json:"timestamp"`
}
