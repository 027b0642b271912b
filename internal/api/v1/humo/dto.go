package humo

import "payadmin-backend/internal/models"

// StepResponse is the outcome of one login step. NeedsTwoStep asks the
// page to collect the cloud password; Hint is the account's password hint.
type StepResponse struct {
	Message      string `json:"message"`
	NeedsTwoStep bool   `json:"needsTwoStep"`
	Hint         string `json:"hint,omitempty"`
}

func newStepResponse(res *models.HumoStepResult) StepResponse {
	return StepResponse{
		Message:      res.Message,
		NeedsTwoStep: res.NeedsTwoStep(),
		Hint:         res.Hint,
	}
}
