package content

import "strings"

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Remedies returns catalog entries whose title, description, or category
// contains the query, case-insensitive. An empty query returns everything.
func (s *Service) Remedies(query string) []Remedy {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]Remedy, len(remedies))
		copy(out, remedies)
		return out
	}
	var out []Remedy
	for _, r := range remedies {
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Description), q) ||
			strings.Contains(strings.ToLower(r.Category), q) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Service) Remedy(id string) (Remedy, bool) {
	for _, r := range remedies {
		if r.ID == id {
			return r, true
		}
	}
	return Remedy{}, false
}

func (s *Service) HealthTopics() []HealthTopic {
	out := make([]HealthTopic, len(healthTopics))
	copy(out, healthTopics)
	return out
}
