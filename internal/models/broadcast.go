package models

type Broadcast struct {
	MessageText   string  `json:"messageText" binding:"required"`
	ButtonText    string  `json:"buttonText"`
	ButtonURL     string  `json:"buttonUrl" binding:"omitempty,url"`
	ScheduledTime *string `json:"scheduledTime"`
}
