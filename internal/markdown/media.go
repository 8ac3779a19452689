package markdown

import (
	"fmt"
	"strings"

	"github.com/gorewood/chatdown/internal/archive"
)

// MediaTag describes a message's media or attachment payload as one
// short bracketed tag, or "" when the message carries none. Rules are
// checked in a fixed precedence order; the first match wins, so a
// message never yields more than one tag.
func MediaTag(m *archive.Message) string {
	switch m.MediaType {
	case "sticker":
		return fmt.Sprintf("[Sticker %s]", m.StickerEmoji)
	case "voice_message":
		return fmt.Sprintf("[Voice message - %ds]", m.DurationSeconds)
	case "video_message":
		return fmt.Sprintf("[Video message - %ds]", m.DurationSeconds)
	case "animation":
		return "[GIF]"
	case "video_file":
		return "[Video]"
	case "audio_file":
		return audioTag(m)
	}

	switch {
	case m.HasPhoto:
		return "[Photo]"
	case m.HasFile:
		return fmt.Sprintf("[File: %s]", fileName(m))
	case m.Location != nil:
		return fmt.Sprintf("[Location: %s, %s]", m.Location.Latitude, m.Location.Longitude)
	case m.Contact != nil:
		name := strings.TrimSpace(m.Contact.FirstName + " " + m.Contact.LastName)
		return fmt.Sprintf("[Contact: %s - %s]", name, m.Contact.PhoneNumber)
	case m.Poll != nil:
		question := m.Poll.Question
		if question == "" {
			question = "Poll"
		}
		return fmt.Sprintf("[Poll: %s]", question)
	}
	return ""
}

// audioTag renders an audio file tag, with the performer included only
// when known.
func audioTag(m *archive.Message) string {
	title := m.Title
	if title == "" {
		title = "Audio"
	}
	if m.Performer != "" {
		return fmt.Sprintf("[Audio: %s - %s]", m.Performer, title)
	}
	return fmt.Sprintf("[Audio: %s]", title)
}

// fileName picks the display name for a file attachment: the file_name
// field, then the raw file path, then a literal fallback.
func fileName(m *archive.Message) string {
	if m.FileName != "" {
		return m.FileName
	}
	if m.FilePath != "" {
		return m.FilePath
	}
	return "File"
}
