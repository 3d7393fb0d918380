package contract

type FeedEventType string

const (
	FeedMessageCreated FeedEventType = "MESSAGE_CREATED"
)

// FeedEnvelope is what the realtime feed delivers to subscribers. For
// message events, Data is a MessageResponse whose client_key lets the
// subscriber drop rows it already applied optimistically.
type FeedEnvelope struct {
	Type FeedEventType `json:"type"`
	Data any           `json:"data,omitempty"`
}
