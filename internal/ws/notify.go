package ws

import (
	"encoding/json"
	"time"

	"job-board/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationStatusEvent struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NotifyStatusChanged implements usecase.StatusNotifier: the applicant's
// open connections receive an event when a recruiter moves their
// application.
func (h *Hub) NotifyStatusChanged(applicantID, jobID uuid.UUID, status application.Status) {
	if h == nil {
		return
	}

	evt := ApplicationStatusEvent{
		Type:      "application_status_changed",
		JobID:     jobID.String(),
		Status:    status.Name(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.SendToUser(applicantID, b)
}
