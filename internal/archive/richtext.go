package archive

import (
	"encoding/json"
	"strconv"
)

// RichText is a message text payload. Exports encode it as either a bare
// string or a list mixing plain strings with annotated span objects; a
// few legacy exports carry other scalars, which are stringified.
type RichText struct {
	// Plain holds the text when the payload was not a span list.
	Plain string
	// Spans holds the fragments when the payload was a list. A bare
	// string fragment becomes a span with an empty Kind.
	Spans []Span
	// IsList reports which representation the payload used.
	IsList bool
}

// Span is one fragment of a rich text list.
type Span struct {
	Kind string
	Text string
	Href string
}

// UnmarshalJSON decodes the string-or-list text payload.
func (t *RichText) UnmarshalJSON(data []byte) error {
	*t = RichText{}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Plain = s
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err == nil {
		t.IsList = true
		t.Spans = make([]Span, 0, len(items))
		for _, item := range items {
			if span, ok := decodeSpan(item); ok {
				t.Spans = append(t.Spans, span)
			}
		}
		return nil
	}

	t.Plain = stringifyScalar(data)
	return nil
}

// decodeSpan decodes one list item: a bare string or an annotation
// object. Items of any other shape are dropped.
func decodeSpan(raw json.RawMessage) (Span, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return Span{Text: s}, true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Span{}, false
	}
	return Span{
		Kind: asString(obj["type"]),
		Text: asString(obj["text"]),
		Href: asString(obj["href"]),
	}, true
}

// stringifyScalar renders a truthy non-string scalar as text. Zero,
// false, and null all become the empty string.
func stringifyScalar(raw json.RawMessage) string {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		if f == 0 {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil && b {
		return "true"
	}
	return ""
}
