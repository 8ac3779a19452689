package markdown

import (
	"strings"

	"github.com/gorewood/chatdown/internal/archive"
)

// serviceSentences maps service action codes to their italic sentence
// templates. {actor} and {title} are interpolated at render time. Both
// migrate directions collapse to the same sentence.
var serviceSentences = map[string]string{
	"create_group":          "*{actor} created the group*",
	"invite_members":        "*{actor} invited members to the group*",
	"remove_members":        "*{actor} removed members from the group*",
	"join_group_by_link":    "*{actor} joined the group via invite link*",
	"leave_group":           "*{actor} left the group*",
	"pin_message":           "*{actor} pinned a message*",
	"edit_group_title":      "*{actor} changed the group title to \"{title}\"*",
	"edit_group_photo":      "*{actor} changed the group photo*",
	"delete_group_photo":    "*{actor} deleted the group photo*",
	"migrate_from_group":    "*Group upgraded to supergroup*",
	"migrate_to_supergroup": "*Group upgraded to supergroup*",
	"phone_call":            "*Phone call with {actor}*",
	"score_in_game":         "*{actor} scored in a game*",
	"bot_allowed":           "*Bot allowed by {actor}*",
}

// ServiceSentence renders a service message as one italic sentence.
// An action code outside the table falls back to the literal
// "*[<action>]*" form.
func ServiceSentence(m *archive.Message) string {
	tmpl, ok := serviceSentences[m.Action]
	if !ok {
		return "*[" + m.Action + "]*"
	}

	actor := m.Actor
	if actor == "" {
		actor = m.From
	}
	if actor == "" {
		actor = "Someone"
	}

	return strings.NewReplacer("{actor}", actor, "{title}", m.Title).Replace(tmpl)
}
