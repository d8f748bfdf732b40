package services

import "encoding/json"

type wsPostNotify struct {
	Event    string `json:"event"`
	UserID   int64  `json:"user_id"`
	PostID   int64  `json:"post_id"`
	AuthorID int64  `json:"author_id"`
	Text     string `json:"text"`
}

// sendDirectPostEvent отправляет событие о новом посте
// в открытые WebSocket-соединения подписчика
func sendDirectPostEvent(event PostEvent) {
	text := event.Text
	if len(text) > 100 {
		text = text[:100] + "..."
	}
	notify := wsPostNotify{
		Event:    "post_published",
		UserID:   event.UserID,
		PostID:   event.PostID,
		AuthorID: event.AuthorID,
		Text:     text,
	}
	jsonData, err := json.Marshal(notify)
	if err != nil {
		return
	}
	GlobalWSConnManager.Send(event.UserID, jsonData)
}
