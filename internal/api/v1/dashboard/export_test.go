package dashboard

import "time"

func (h *Handler) SetClock(now func() time.Time) {
	h.now = now
}
