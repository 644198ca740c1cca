package chat

// Role tags who authored a turn.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Turn is one transcript entry. Turns are never stored; they only live for a single render.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Request is the relay payload. SessionID is a client-side label the server only echoes and logs.
type Request struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// Reply is the relay success payload.
type Reply struct {
	Reply     string `json:"reply"`
	HTML      string `json:"html"`
	SessionID string `json:"sessionId,omitempty"`
}

// ErrorReply is the relay failure payload.
type ErrorReply struct {
	Error string `json:"error"`
}
