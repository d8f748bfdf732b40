package models

import "time"

// Follow - подписка пользователя user на автора author.
// Пара (user_id, author_id) уникальна на уровне БД.
type Follow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_follow_user_author" json:"user_id"`
	User      *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	AuthorID  int64     `gorm:"not null;uniqueIndex:idx_follow_user_author" json:"author_id"`
	Author    *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
