package archive

import "sort"

// Stats summarizes an archive for the document header and the inspect
// surfaces.
type Stats struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	ID           string   `json:"id,omitempty"`
	Messages     int      `json:"messages"`
	FirstDate    string   `json:"first_date,omitempty"`
	LastDate     string   `json:"last_date,omitempty"`
	Participants []string `json:"participants"`
}

// Stats computes the archive summary. First/last dates are the string
// min/max over the raw date fields of dated messages; participants are
// the distinct sender-or-actor names, sorted.
func (a *Archive) Stats() Stats {
	s := Stats{
		Name:     a.Name,
		Type:     a.Type,
		ID:       a.ID,
		Messages: len(a.Messages),
	}

	seen := make(map[string]bool)
	for _, m := range a.Messages {
		if m.Date != "" {
			if s.FirstDate == "" || m.Date < s.FirstDate {
				s.FirstDate = m.Date
			}
			if s.LastDate == "" || m.Date > s.LastDate {
				s.LastDate = m.Date
			}
		}

		name := m.From
		if name == "" {
			name = m.Actor
		}
		if name != "" && !seen[name] {
			seen[name] = true
			s.Participants = append(s.Participants, name)
		}
	}

	sort.Strings(s.Participants)
	return s
}
