// Package render turns raw completion text into the HTML fragment shown in a chat bubble.
//
// The rules are regular-expression substitutions applied in a fixed order. Emphasis takes the
// first minimal match, and the whole fragment sits inside one <p> even when it contains lists
// or quotes. After line endings are normalised, escaping runs first; no later rule may emit input
// characters unescaped.
package render

import (
	"regexp"
	"strings"

	"github.com/zhouzirui/mindchat/backend/internal/model/chat"
)

var (
	htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

	strongPattern      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	emPattern          = regexp.MustCompile(`\*(.*?)\*`)
	codePattern        = regexp.MustCompile("`(.*?)`")
	// Markers accept any Unicode space after them, so a non-breaking space still starts an item.
	quotePattern       = regexp.MustCompile(`(?m)^&gt;[\s\p{Zs}](.+)$`)
	orderedItemPattern = regexp.MustCompile(`(?m)^\d+\.[\s\p{Zs}](.+)$`)
	bulletItemPattern  = regexp.MustCompile(`(?m)^[-•][\s\p{Zs}](.+)$`)

	lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")
)

// Escape replaces the three HTML-significant characters.
func Escape(text string) string {
	return htmlEscaper.Replace(text)
}

// BotMessage renders model output. Identical input always yields identical output.
func BotMessage(text string) string {
	out := Escape(lineEndings.Replace(text))

	out = strongPattern.ReplaceAllString(out, "<strong>${1}</strong>")
	out = emPattern.ReplaceAllString(out, "<em>${1}</em>")
	out = codePattern.ReplaceAllString(out, "<code>${1}</code>")

	out = quotePattern.ReplaceAllString(out, "<blockquote>${1}</blockquote>")

	// Numbering is not preserved: ordered and bulleted items share the same marker.
	out = orderedItemPattern.ReplaceAllString(out, "<li>${1}</li>")
	out = bulletItemPattern.ReplaceAllString(out, "<li>${1}</li>")
	out = wrapListRuns(out)

	out = strings.ReplaceAll(out, "\n\n", "</p><p>")
	out = strings.ReplaceAll(out, "\n", "<br>")

	return "<p>" + out + "</p>"
}

// Turn renders a transcript entry. User text is shown verbatim, so it is only escaped.
func Turn(turn chat.Turn) string {
	if turn.Role == chat.RoleBot {
		return BotMessage(turn.Text)
	}
	return Escape(turn.Text)
}

// wrapListRuns joins every run of adjacent list-item lines into one <ul>.
func wrapListRuns(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	var run strings.Builder
	inRun := false
	flush := func() {
		if !inRun {
			return
		}
		run.WriteString("</ul>")
		out = append(out, run.String())
		run.Reset()
		inRun = false
	}

	for _, line := range lines {
		if isListItem(line) {
			if !inRun {
				run.WriteString("<ul>")
				inRun = true
			}
			run.WriteString(line)
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()

	return strings.Join(out, "\n")
}

func isListItem(line string) bool {
	return strings.HasPrefix(line, "<li>") && strings.HasSuffix(line, "</li>")
}
