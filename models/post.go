package models

import "time"

// Post - модель поста пользователя.
// PubDate выставляется один раз при создании и больше не меняется.
type Post struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Text     string    `gorm:"type:text" json:"text"`
	PubDate  time.Time `gorm:"column:pub_date;index" json:"pub_date"`
	AuthorID int64     `gorm:"index;not null" json:"author_id"`
	Author   *User     `gorm:"constraint:OnDelete:CASCADE" json:"author,omitempty"`
	GroupID  *int64    `gorm:"index" json:"group_id"`
	Group    *Group    `gorm:"constraint:OnDelete:SET NULL" json:"group,omitempty"`
	Image    string    `gorm:"size:255" json:"image,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}

// Page - страница постов с метаданными пагинации,
// отдается шаблонам под ключом page_obj
type Page struct {
	Posts       []Post `json:"posts"`
	Number      int    `json:"number"`
	TotalPages  int    `json:"total_pages"`
	Count       int64  `json:"count"`
	HasNext     bool   `json:"has_next"`
	HasPrevious bool   `json:"has_previous"`
}
