package broadcast

// SendRequest is the broadcast form. ScheduledTime is forwarded only when
// Schedule is set.
type SendRequest struct {
	MessageText   string `json:"messageText" binding:"required"`
	ButtonText    string `json:"buttonText"`
	ButtonURL     string `json:"buttonUrl" binding:"omitempty,url"`
	Schedule      bool   `json:"schedule"`
	ScheduledTime string `json:"scheduledTime" binding:"required_if=Schedule true"`
}
