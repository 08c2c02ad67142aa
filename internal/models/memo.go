package models

type Memo struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title   string `gorm:"not null;size:100" json:"title"`
	Content string `gorm:"size:1000" json:"content"`
}

// TableName keeps the singular table name the original schema used
func (Memo) TableName() string {
	return "memo"
}
