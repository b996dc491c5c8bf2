package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type JobPublishedEvent struct {
	Type      string    `json:"type"`
	JobID     uuid.UUID `json:"job_id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Timestamp string    `json:"timestamp"`
}

// NotifyJobPublished broadcasts a publish event to every connected client.
// Nil-safe so callers do not have to care whether the hub is wired.
func (h *Hub) NotifyJobPublished(jobID uuid.UUID, title, location string) {
	if h == nil {
		return
	}

	evt := JobPublishedEvent{
		Type:      "job_published",
		JobID:     jobID,
		Title:     title,
		Location:  location,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
