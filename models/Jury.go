package models

// Jury represents a jury member who can submit program results
type Jury struct {
    ID           string `gorm:"type:uuid;primary_key" json:"id"`
    Name         string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
    PasswordHash string `gorm:"type:varchar(255);not null;column:password_hash" json:"-"`
}
