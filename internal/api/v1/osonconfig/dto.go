package osonconfig

import (
	"payadmin-backend/internal/models"
	"payadmin-backend/internal/quickpaste"
)

type QuickPasteRequest struct {
	Text   string            `json:"text" binding:"required"`
	Config models.OsonConfig `json:"config"`
}

// QuickPasteResponse carries the merged form and the values that were
// recognised in the pasted text.
type QuickPasteResponse struct {
	Config models.OsonConfig `json:"config"`
	Fields quickpaste.Fields `json:"fields"`
}
