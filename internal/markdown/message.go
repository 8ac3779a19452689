package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gorewood/chatdown/internal/archive"
)

// replyExcerptLimit caps the quoted original text in a reply block.
const replyExcerptLimit = 100

// Block renders one message record as a self-contained Markdown block.
// Service messages become a block-quoted sentence with timestamp;
// content messages get a heading, metadata line, optional reply and
// forward quotes, media tag, body text, and a closing rule.
func Block(m *archive.Message, index archive.ReplyIndex) string {
	if m.IsService() {
		return serviceBlock(m)
	}
	return contentBlock(m, index)
}

// serviceBlock renders a service message: quoted sentence, quoted
// italic timestamp, trailing blank line.
func serviceBlock(m *archive.Message) string {
	lines := []string{
		"> " + ServiceSentence(m),
		"> *" + Timestamp(m.Date) + "*",
		"",
	}
	return strings.Join(lines, "\n")
}

// contentBlock renders a regular message block.
func contentBlock(m *archive.Message, index archive.ReplyIndex) string {
	lines := []string{
		"### " + m.Sender(),
		fmt.Sprintf("*%s* | Message #%s", Timestamp(m.Date), formatID(m.ID)),
		"",
	}

	if quote, ok := replyQuote(m, index); ok {
		lines = append(lines, quote, "")
	}

	if m.ForwardedFrom != "" {
		lines = append(lines, fmt.Sprintf("> **↪ Forwarded from %s**", m.ForwardedFrom), "")
	}

	text := Text(m.Text)
	mediaTag := MediaTag(m)

	if mediaTag != "" {
		lines = append(lines, "📎 "+mediaTag)
		if text != "" {
			lines = append(lines, "")
		}
	}
	if text != "" {
		lines = append(lines, text)
	}
	if text == "" && mediaTag == "" {
		lines = append(lines, "*[Empty message]*")
	}

	lines = append(lines, "", "---", "")
	return strings.Join(lines, "\n")
}

// replyQuote builds the quoted excerpt of the message being replied to.
// An unresolvable reference yields no quote at all.
func replyQuote(m *archive.Message, index archive.ReplyIndex) (string, bool) {
	original, ok := index.Lookup(m.ReplyTo)
	if !ok {
		return "", false
	}

	excerpt := truncateRunes(Text(original.Text), replyExcerptLimit)
	excerpt = strings.ReplaceAll(excerpt, "\n", " ")
	return fmt.Sprintf("> **↩ Reply to %s:** %s", original.Sender(), excerpt), true
}

// truncateRunes cuts text to limit characters, appending "..." only
// when something was actually dropped.
func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// formatID renders an optional message identifier, empty when absent.
func formatID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
