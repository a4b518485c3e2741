package models

// Assignment puts a jury member on duty for a program stage
type Assignment struct {
    ID          string `gorm:"type:uuid;primary_key" json:"id"`
    ProgramID   string `gorm:"type:uuid;not null;uniqueIndex:idx_program_jury;column:program_id" json:"program_id"`
    ProgramName string `gorm:"type:varchar(100);not null;column:program_name" json:"program_name"`
    JuryID      string `gorm:"type:uuid;not null;uniqueIndex:idx_program_jury;column:jury_id" json:"jury_id"`
    JuryName    string `gorm:"type:varchar(100);not null;column:jury_name" json:"jury_name"`
    Stage       string `gorm:"type:varchar(50)" json:"stage"`
    CreatedAt   string `gorm:"type:varchar(40);not null;column:created_at" json:"created_at"`
}
