package chat

import (
	"context"
	"errors"

	"github.com/zhouzirui/mindchat/backend/pkg/log"
)

var (
	// ErrUpstream is the only failure callers see; details stay in the server log.
	ErrUpstream = errors.New("completion service error")
	// ErrUnavailable marks a relay started without a usable completion model.
	ErrUnavailable = errors.New("completion service not configured")
)

// Completer produces one completion for one user message.
type Completer interface {
	Complete(ctx context.Context, userMessage string) (string, error)
}

// Service relays single messages to the completion service. It stores nothing,
// and every call is independent of every other call.
type Service struct {
	completer Completer
}

// NewService wraps completer. A nil completer yields a relay that always fails
// with ErrUnavailable, so the HTTP surface stays up without credentials.
func NewService(completer Completer) *Service {
	return &Service{completer: completer}
}

// Reply forwards message as-is. sessionID is a client label used only in logs.
func (s *Service) Reply(ctx context.Context, sessionID, message string) (string, error) {
	if s.completer == nil {
		log.Errorw("[chat] relay unavailable", "sessionId", sessionID, "error", ErrUnavailable)
		return "", errors.Join(ErrUpstream, ErrUnavailable)
	}

	reply, err := s.completer.Complete(ctx, message)
	if err != nil {
		log.Errorw("[chat] upstream call failed", "sessionId", sessionID, "messageLength", len(message), "error", err)
		return "", ErrUpstream
	}

	log.Infow("[chat] relayed message", "sessionId", sessionID, "messageLength", len(message), "replyLength", len(reply))
	return reply, nil
}
