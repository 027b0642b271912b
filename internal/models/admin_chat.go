package models

// AdminChat is a bot chat that receives admin notifications.
type AdminChat struct {
	ChatID               int64 `json:"chatId"`
	ReceiveNotifications bool  `json:"receiveNotifications"`
}
