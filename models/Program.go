package models

// Program represents a festival event that students can be registered for
type Program struct {
    ID             string `gorm:"type:uuid;primary_key" json:"id"`
    Name           string `gorm:"type:varchar(100);not null" json:"name"`
    Section        string `gorm:"type:varchar(50)" json:"section"`
    Category       string `gorm:"type:varchar(50)" json:"category"`
    CandidateLimit int    `gorm:"not null;default:1;column:candidate_limit" json:"candidate_limit"`
}
