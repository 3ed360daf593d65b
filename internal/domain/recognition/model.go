package recognition

import "time"

// Recognition is a single peer-to-peer kudos record. Records are immutable
// once created; no update or delete path exists.
type Recognition struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	FromUser  string    `gorm:"column:from_user;not null" json:"from_user"`
	ToUser    string    `gorm:"column:to_user;not null" json:"to_user"`
	Message   string    `gorm:"not null" json:"message"`
	Value     string    `gorm:"not null" json:"value"`
	Points    int       `gorm:"not null;default:25" json:"points"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
