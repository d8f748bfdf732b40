package models

import "time"

// Comment - комментарий к посту. Created не меняется после создания.
type Comment struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID   *int64    `gorm:"index" json:"post_id"`
	Post     *Post     `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	AuthorID int64     `gorm:"index;not null" json:"author_id"`
	Author   *User     `gorm:"constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Text     string    `gorm:"type:text" json:"text"`
	Created  time.Time `gorm:"column:created;index" json:"created"`
}

func (Comment) TableName() string {
	return "comments"
}
