package markdown

import (
	"strings"

	"github.com/gorewood/chatdown/internal/archive"
)

// spanWrappers maps annotation kinds to their inline Markdown form.
// Kinds absent from the table (link, hashtag, email, phone,
// custom_emoji, and anything unrecognized) pass the text through
// unchanged.
var spanWrappers = map[string]func(text, href string) string{
	"bold":   func(t, _ string) string { return "**" + t + "**" },
	"italic": func(t, _ string) string { return "*" + t + "*" },
	"code":   func(t, _ string) string { return "`" + t + "`" },
	"pre":    func(t, _ string) string { return "\n```\n" + t + "\n```\n" },
	"text_link": func(t, href string) string {
		return "[" + t + "](" + href + ")"
	},
	"mention":       mentionSpan,
	"mention_name":  mentionSpan,
	"strikethrough": func(t, _ string) string { return "~~" + t + "~~" },
	"underline":     func(t, _ string) string { return "<u>" + t + "</u>" },
	"spoiler":       func(t, _ string) string { return "||" + t + "||" },
}

// mentionSpan prefixes a user mention with @ unless already present.
func mentionSpan(t, _ string) string {
	if strings.HasPrefix(t, "@") {
		return t
	}
	return "@" + t
}

// Text flattens a rich text payload into a single inline-formatted
// string. A plain payload is returned as-is; a span list is resolved
// fragment by fragment and concatenated in order with no separators.
func Text(t archive.RichText) string {
	if !t.IsList {
		return t.Plain
	}

	var b strings.Builder
	for _, span := range t.Spans {
		if wrap, ok := spanWrappers[span.Kind]; ok {
			b.WriteString(wrap(span.Text, span.Href))
		} else {
			b.WriteString(span.Text)
		}
	}
	return b.String()
}
