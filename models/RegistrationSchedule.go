package models

// ScheduleKey is the fixed key of the singleton registration schedule row
const ScheduleKey = "global"

// RegistrationSchedule is the singleton time window during which teams may
// register students for programs directly. Stored as RFC3339 instants and
// updated via atomic upsert on the fixed key.
type RegistrationSchedule struct {
    Key           string `gorm:"type:varchar(20);primary_key" json:"-"`
    StartDateTime string `gorm:"type:varchar(40);not null;column:start_date_time" json:"start_date_time"`
    EndDateTime   string `gorm:"type:varchar(40);not null;column:end_date_time" json:"end_date_time"`
}
