package team

// Member is one entry in the team directory. The directory is read-only
// through the API; rows exist only via seeding.
type Member struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Avatar     string `gorm:"not null" json:"avatar"`
	Role       string `gorm:"not null" json:"role"`
	Department string `gorm:"not null" json:"department"`
}

func (Member) TableName() string {
	return "team_members"
}
