package models

// Student represents a festival participant belonging to exactly one team.
// Chest numbers are uppercased on write and unique across all teams.
type Student struct {
    ID          string `gorm:"type:uuid;primary_key" json:"id"`
    Name        string `gorm:"type:varchar(100);not null" json:"name"`
    ChestNo     string `gorm:"type:varchar(20);not null;uniqueIndex;column:chest_no" json:"chest_no"`
    TeamID      string `gorm:"type:uuid;not null;index;column:team_id" json:"team_id"`
    TotalPoints int    `gorm:"not null;default:0;column:total_points" json:"total_points"`
    Team        *Team  `gorm:"foreignKey:TeamID" json:"-"`
}
