package models

// Group - сообщество, к которому можно привязать пост
type Group struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"size:200" json:"title"`
	Slug        string `gorm:"size:50;uniqueIndex" json:"slug"`
	Description string `gorm:"size:500" json:"description"`
}

func (Group) TableName() string {
	return "groups"
}
