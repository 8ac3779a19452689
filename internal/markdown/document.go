package markdown

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/chatdown/internal/archive"
)

// Options control the supplementary parts of document rendering. The
// zero value produces the canonical output: header plus message blocks,
// no frontmatter.
type Options struct {
	// Frontmatter prepends a YAML frontmatter block describing the
	// archive.
	Frontmatter bool
	// NoHeader omits the chat-details header and renders message
	// blocks only.
	NoHeader bool
}

// frontmatter is the YAML block emitted ahead of the document when
// Options.Frontmatter is set.
type frontmatter struct {
	Schema   string `yaml:"schema"`
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	ID       string `yaml:"id,omitempty"`
	Messages int    `yaml:"messages"`
}

// frontmatterSchema identifies the frontmatter shape for downstream
// tooling.
const frontmatterSchema = "chatdown.export/v1"

// Document renders a whole archive: header, then every message block in
// original order, with blank-line separation. Message order is taken as
// chronological and never re-sorted.
func Document(a *archive.Archive, opts Options) string {
	parts := make([]string, 0, len(a.Messages)+2)

	if opts.Frontmatter {
		parts = append(parts, frontmatterBlock(a))
	}
	if !opts.NoHeader {
		parts = append(parts, header(a))
	}

	index := archive.BuildReplyIndex(a.Messages)
	for _, m := range a.Messages {
		parts = append(parts, Block(m, index))
	}

	return strings.Join(parts, "\n")
}

// frontmatterBlock marshals the archive summary as YAML frontmatter.
func frontmatterBlock(a *archive.Archive) string {
	fm := frontmatter{
		Schema:   frontmatterSchema,
		Name:     a.Name,
		Type:     a.Type,
		ID:       a.ID,
		Messages: len(a.Messages),
	}

	body, err := yaml.Marshal(fm)
	if err != nil {
		// The struct is plain scalars; marshaling cannot fail in
		// practice. Degrade to no frontmatter rather than aborting.
		return ""
	}
	return "---\n" + string(body) + "---\n"
}

// header renders the document title, details table, and participant
// list.
func header(a *archive.Archive) string {
	stats := a.Stats()

	name := stats.Name
	if name == "" {
		name = "Telegram Chat"
	}
	chatType := stats.Type
	if chatType == "" {
		chatType = "unknown"
	}

	lines := []string{
		"# " + name,
		"",
		"## Chat Details",
		"",
		"| Property | Value |",
		"|----------|-------|",
		fmt.Sprintf("| **Name** | %s |", name),
		fmt.Sprintf("| **Type** | %s |", HumanizeType(chatType)),
		fmt.Sprintf("| **ID** | %s |", stats.ID),
		fmt.Sprintf("| **Total Messages** | %d |", stats.Messages),
	}

	if stats.FirstDate != "" {
		lines = append(lines,
			fmt.Sprintf("| **First Message** | %s |", Timestamp(stats.FirstDate)),
			fmt.Sprintf("| **Last Message** | %s |", Timestamp(stats.LastDate)),
		)
	}

	if len(stats.Participants) > 0 {
		lines = append(lines, fmt.Sprintf("| **Participants** | %d |", len(stats.Participants)))
	}
	lines = append(lines, "")

	if len(stats.Participants) > 0 {
		lines = append(lines, "### Participants", "")
		for _, p := range stats.Participants {
			lines = append(lines, "- "+p)
		}
		lines = append(lines, "")
	}

	lines = append(lines, "---", "", "## Messages", "")
	return strings.Join(lines, "\n")
}

// HumanizeType turns a chat type code into display form: underscores
// become spaces and each word is title-cased ("private_supergroup" →
// "Private Supergroup").
func HumanizeType(chatType string) string {
	spaced := strings.ReplaceAll(chatType, "_", " ")

	var b strings.Builder
	prevLetter := false
	for _, r := range spaced {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}
