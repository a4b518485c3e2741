package models

// Team represents a festival team with portal access for its leader
type Team struct {
    ID           string     `gorm:"type:uuid;primary_key" json:"id"`
    Name         string     `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
    LeaderName   string     `gorm:"type:varchar(100);not null;column:leader_name" json:"leader_name"`
    ThemeColor   string     `gorm:"type:varchar(7);not null;default:'#0ea5e9';column:theme_color" json:"theme_color"`
    PasswordHash string     `gorm:"type:varchar(255);not null;column:password_hash" json:"-"`
    TotalPoints  int        `gorm:"not null;default:0;column:total_points" json:"total_points"`
    Students     []*Student `gorm:"foreignKey:TeamID" json:"students,omitempty"`
}
