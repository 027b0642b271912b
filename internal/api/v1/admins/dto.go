package admins

type CreateAdminChatRequest struct {
	ChatID int64 `json:"chatId" binding:"required"`
}

type NotificationsRequest struct {
	Enable *bool `json:"enable" binding:"required"`
}
