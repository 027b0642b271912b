package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"payadmin-backend/internal/models"
)

const adminChatsPath = "/admin/chats"

func (c *Client) ListAdminChats(ctx context.Context, cred Credential) ([]models.AdminChat, error) {
	var chats []models.AdminChat
	if err := c.Do(ctx, cred, http.MethodGet, adminChatsPath, nil, nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// CreateAdminChat registers a chat; the API enables notifications by default.
func (c *Client) CreateAdminChat(ctx context.Context, cred Credential, chatID int64) error {
	q := url.Values{"chatId": {pathID(chatID)}}
	return c.Do(ctx, cred, http.MethodPost, adminChatsPath, q, nil, nil)
}

func (c *Client) SetAdminNotifications(ctx context.Context, cred Credential, chatID int64, enable bool) error {
	q := url.Values{"enable": {strconv.FormatBool(enable)}}
	return c.Do(ctx, cred, http.MethodPut, adminChatsPath+"/"+pathID(chatID), q, nil, nil)
}

func (c *Client) DeleteAdminChat(ctx context.Context, cred Credential, chatID int64) error {
	return c.Do(ctx, cred, http.MethodDelete, adminChatsPath+"/"+pathID(chatID), nil, nil, nil)
}
