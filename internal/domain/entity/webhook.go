package entity

// EventTypeUpload is the only webhook event type this service acts on.
const EventTypeUpload = "UPLOAD"

// EventEnvelope is the webhook notification body the storage provider posts.
type EventEnvelope struct {
	Events []Event `json:"events"`
}

type Event struct {
	EventType string      `json:"event_type"`
	Source    EventSource `json:"source"`
}

type EventSource struct {
	ID string `json:"id"`
}
