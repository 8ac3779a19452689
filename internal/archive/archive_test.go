package archive

import (
	"encoding/json"
	"testing"
)

// mustMessage unmarshals a message record or fails the test.
func mustMessage(t *testing.T, data string) *Message {
	t.Helper()
	var m Message
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		t.Fatalf("unmarshaling message: %v", err)
	}
	return &m
}

func TestMessageUnmarshal_ContentMessage(t *testing.T) {
	m := mustMessage(t, `{
		"id": 42,
		"type": "message",
		"date": "2024-01-01T10:00:00",
		"from": "Alice",
		"text": "Hello",
		"reply_to_message_id": 7,
		"forwarded_from": "Bob"
	}`)

	if m.ID == nil || *m.ID != 42 {
		t.Errorf("ID = %v, want 42", m.ID)
	}
	if m.IsService() {
		t.Error("IsService() = true for a content message")
	}
	if m.From != "Alice" {
		t.Errorf("From = %q, want %q", m.From, "Alice")
	}
	if m.Text.Plain != "Hello" {
		t.Errorf("Text.Plain = %q, want %q", m.Text.Plain, "Hello")
	}
	if m.ReplyTo == nil || *m.ReplyTo != 7 {
		t.Errorf("ReplyTo = %v, want 7", m.ReplyTo)
	}
	if m.ForwardedFrom != "Bob" {
		t.Errorf("ForwardedFrom = %q, want %q", m.ForwardedFrom, "Bob")
	}
}

func TestMessageUnmarshal_ServiceMessage(t *testing.T) {
	m := mustMessage(t, `{
		"id": 3,
		"type": "service",
		"date": "2024-01-01T09:00:00",
		"actor": "Bob",
		"action": "create_group",
		"title": "New Group"
	}`)

	if !m.IsService() {
		t.Error("IsService() = false for a service message")
	}
	if m.Actor != "Bob" {
		t.Errorf("Actor = %q, want %q", m.Actor, "Bob")
	}
	if m.Action != "create_group" {
		t.Errorf("Action = %q, want %q", m.Action, "create_group")
	}
	if m.Title != "New Group" {
		t.Errorf("Title = %q, want %q", m.Title, "New Group")
	}
}

func TestMessageUnmarshal_MalformedFieldsDegrade(t *testing.T) {
	// Every oddly-typed field becomes its zero value; the record itself
	// still parses.
	m := mustMessage(t, `{
		"id": "not-a-number",
		"from": 12345,
		"date": null,
		"duration_seconds": "sixty",
		"reply_to_message_id": [1, 2]
	}`)

	if m.ID != nil {
		t.Errorf("ID = %v, want nil", m.ID)
	}
	if m.From != "" {
		t.Errorf("From = %q, want empty", m.From)
	}
	if m.Date != "" {
		t.Errorf("Date = %q, want empty", m.Date)
	}
	if m.DurationSeconds != 0 {
		t.Errorf("DurationSeconds = %d, want 0", m.DurationSeconds)
	}
	if m.ReplyTo != nil {
		t.Errorf("ReplyTo = %v, want nil", m.ReplyTo)
	}
}

func TestMessageUnmarshal_MediaFields(t *testing.T) {
	m := mustMessage(t, `{
		"media_type": "sticker",
		"sticker_emoji": "😀",
		"photo": "photos/photo_1.jpg",
		"file": "files/doc.pdf",
		"file_name": "doc.pdf",
		"location_information": {"latitude": 55.7558, "longitude": 37.6173},
		"contact_information": {"first_name": "Ann", "last_name": "Lee", "phone_number": "+1234"},
		"poll": {"question": "Lunch?"}
	}`)

	if !m.HasPhoto {
		t.Error("HasPhoto = false, want true")
	}
	if !m.HasFile {
		t.Error("HasFile = false, want true")
	}
	if m.FilePath != "files/doc.pdf" {
		t.Errorf("FilePath = %q, want %q", m.FilePath, "files/doc.pdf")
	}
	if m.Location == nil || m.Location.Latitude.String() != "55.7558" {
		t.Errorf("Location = %+v, want latitude 55.7558", m.Location)
	}
	if m.Contact == nil || m.Contact.PhoneNumber != "+1234" {
		t.Errorf("Contact = %+v, want phone +1234", m.Contact)
	}
	if m.Poll == nil || m.Poll.Question != "Lunch?" {
		t.Errorf("Poll = %+v, want question Lunch?", m.Poll)
	}
}

func TestMessageUnmarshal_NullAttachmentsAbsent(t *testing.T) {
	m := mustMessage(t, `{"location_information": null, "contact_information": null, "poll": null}`)

	if m.Location != nil {
		t.Errorf("Location = %+v, want nil", m.Location)
	}
	if m.Contact != nil {
		t.Errorf("Contact = %+v, want nil", m.Contact)
	}
	if m.Poll != nil {
		t.Errorf("Poll = %+v, want nil", m.Poll)
	}
}

func TestMessageSender(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"from present", `{"from": "Alice"}`, "Alice"},
		{"actor fallback", `{"actor": "Bob"}`, "Bob"},
		{"from wins over actor", `{"from": "Alice", "actor": "Bob"}`, "Alice"},
		{"neither present", `{}`, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMessage(t, tt.data)
			if got := m.Sender(); got != tt.want {
				t.Errorf("Sender() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArchiveUnmarshal(t *testing.T) {
	data := `{
		"name": "Team Chat",
		"type": "private_supergroup",
		"id": 987654321,
		"messages": [
			{"id": 1, "from": "Alice", "text": "hi"},
			{"id": 2, "type": "service", "actor": "Bob", "action": "pin_message"}
		]
	}`

	var a Archive
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		t.Fatalf("unmarshaling archive: %v", err)
	}

	if a.Name != "Team Chat" {
		t.Errorf("Name = %q, want %q", a.Name, "Team Chat")
	}
	if a.ID != "987654321" {
		t.Errorf("ID = %q, want %q", a.ID, "987654321")
	}
	if len(a.Messages) != 2 {
		t.Fatalf("len(Messages) = %d, want 2", len(a.Messages))
	}
	if a.Messages[1].Action != "pin_message" {
		t.Errorf("Messages[1].Action = %q, want %q", a.Messages[1].Action, "pin_message")
	}
}

func TestArchiveUnmarshal_StringID(t *testing.T) {
	var a Archive
	if err := json.Unmarshal([]byte(`{"id": "chat-abc"}`), &a); err != nil {
		t.Fatalf("unmarshaling archive: %v", err)
	}
	if a.ID != "chat-abc" {
		t.Errorf("ID = %q, want %q", a.ID, "chat-abc")
	}
}

func TestArchiveUnmarshal_NonObjectFails(t *testing.T) {
	var a Archive
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &a); err == nil {
		t.Error("unmarshaling a JSON array succeeded, want error")
	}
}
