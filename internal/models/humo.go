package models

import "encoding/json"

type HumoAccount struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Username       string `json:"username"`
	Status         string `json:"status"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

type HumoPhone struct {
	Phone string `json:"phone" binding:"required"`
}

type HumoSMSCode struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

type HumoTwoStep struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HumoStepResult is the remote reply to a Humo login step. Next is set
// when another step is required.
type HumoStepResult struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Next    string          `json:"-"`
	Hint    string          `json:"-"`
}

func (r *HumoStepResult) UnmarshalJSON(b []byte) error {
	type alias HumoStepResult
	var raw alias
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = HumoStepResult(raw)
	if len(r.Data) > 0 {
		var step struct {
			Next string `json:"next"`
			Hint string `json:"hint"`
		}
		if err := json.Unmarshal(r.Data, &step); err == nil {
			r.Next = step.Next
			r.Hint = step.Hint
		}
	}
	return nil
}

// NeedsTwoStep reports whether the account asked for its cloud password.
func (r HumoStepResult) NeedsTwoStep() bool {
	return r.Next == "POST /twostep"
}
