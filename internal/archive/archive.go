// Package archive provides the data model and loader for Telegram chat
// exports. An export is a single JSON document with chat metadata and an
// ordered message list; everything here is decoded best-effort so that a
// missing or oddly-typed field degrades to its zero value instead of
// failing the whole document.
package archive

import (
	"encoding/json"
	"strconv"
)

// Archive is a parsed chat export.
type Archive struct {
	Name     string
	Type     string
	ID       string // raw scalar: number text or string value, "" when absent
	Messages []*Message
}

// Message is one record from the export's message list. Content and
// service messages share the struct; Type distinguishes them ("service"
// marks a service message, anything else is a content message).
type Message struct {
	ID   *int64
	Type string
	Date string

	From  string
	Actor string

	// Service message fields.
	Action string
	Title  string

	// Content message fields.
	Text          RichText
	ReplyTo       *int64
	ForwardedFrom string

	// Media descriptors.
	MediaType       string
	StickerEmoji    string
	DurationSeconds int
	Performer       string

	HasPhoto bool
	HasFile  bool
	FilePath string
	FileName string

	Location *Location
	Contact  *Contact
	Poll     *Poll
}

// Location is an attached geographic point.
type Location struct {
	Latitude  json.Number `json:"latitude"`
	Longitude json.Number `json:"longitude"`
}

// Contact is an attached contact card.
type Contact struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

// Poll is an attached poll.
type Poll struct {
	Question string `json:"question"`
}

// UnmarshalJSON decodes an export document. The document must be a JSON
// object; individual fields are extracted best-effort.
func (a *Archive) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	a.Name = asString(fields["name"])
	a.Type = asString(fields["type"])
	a.ID = asScalar(fields["id"])

	if raw, ok := fields["messages"]; ok {
		// A malformed messages field degrades to an empty archive.
		_ = json.Unmarshal(raw, &a.Messages)
	}
	return nil
}

// UnmarshalJSON decodes one message record. Every field is optional; a
// field of an unexpected type is treated as absent.
func (m *Message) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	m.ID = asInt64(fields["id"])
	m.Type = asString(fields["type"])
	m.Date = asString(fields["date"])
	m.From = asString(fields["from"])
	m.Actor = asString(fields["actor"])
	m.Action = asString(fields["action"])
	m.Title = asString(fields["title"])

	if raw, ok := fields["text"]; ok {
		_ = json.Unmarshal(raw, &m.Text)
	}
	m.ReplyTo = asInt64(fields["reply_to_message_id"])
	m.ForwardedFrom = asString(fields["forwarded_from"])

	m.MediaType = asString(fields["media_type"])
	m.StickerEmoji = asString(fields["sticker_emoji"])
	m.DurationSeconds = asInt(fields["duration_seconds"])
	m.Performer = asString(fields["performer"])

	_, m.HasPhoto = fields["photo"]
	if raw, ok := fields["file"]; ok {
		m.HasFile = true
		m.FilePath = asString(raw)
	}
	m.FileName = asString(fields["file_name"])

	if raw, ok := fields["location_information"]; ok {
		var loc Location
		if json.Unmarshal(raw, &loc) == nil && string(raw) != "null" {
			m.Location = &loc
		}
	}
	if raw, ok := fields["contact_information"]; ok {
		var c Contact
		if json.Unmarshal(raw, &c) == nil && string(raw) != "null" {
			m.Contact = &c
		}
	}
	if raw, ok := fields["poll"]; ok {
		var p Poll
		if json.Unmarshal(raw, &p) == nil && string(raw) != "null" {
			m.Poll = &p
		}
	}
	return nil
}

// IsService reports whether the message is a service (event) record.
func (m *Message) IsService() bool {
	return m.Type == "service"
}

// Sender returns the display name to attribute the message to:
// the from field, then the actor field, then "Unknown".
func (m *Message) Sender() string {
	if m.From != "" {
		return m.From
	}
	if m.Actor != "" {
		return m.Actor
	}
	return "Unknown"
}

// asString decodes a JSON string value, returning "" for anything else.
func asString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// asScalar renders a JSON scalar (number, string, bool) as display text.
func asScalar(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b)
	}
	return ""
}

// asInt64 decodes an integer identifier, returning nil when absent or
// not an integer.
func asInt64(raw json.RawMessage) *int64 {
	if len(raw) == 0 {
		return nil
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil
	}
	return &n
}

// asInt decodes a small integer field such as a duration.
func asInt(raw json.RawMessage) int {
	if n := asInt64(raw); n != nil {
		return int(*n)
	}
	return 0
}
