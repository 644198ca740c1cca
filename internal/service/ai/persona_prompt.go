package ai

import (
	"fmt"
	"strings"

	"github.com/zhouzirui/mindchat/backend/internal/model/persona"
)

// BuildSystemPrompt returns the system instruction for p. Personas without an explicit
// prompt fall back to one assembled from their name and title.
func BuildSystemPrompt(p persona.Persona) string {
	if prompt := strings.TrimSpace(p.SystemPrompt); prompt != "" {
		return prompt
	}
	return buildBasicSystemPrompt(p)
}

func buildBasicSystemPrompt(p persona.Persona) string {
	return fmt.Sprintf("Ты – %s, %s. Отвечай доброжелательно и по существу.",
		strings.ToLower(strings.TrimSpace(p.Name)),
		strings.ToLower(strings.TrimSpace(p.Title)),
	)
}
