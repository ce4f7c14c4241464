package models

// TutorProfileInput creates or replaces one tutor's delivery subscription.
type TutorProfileInput struct {
	TutorID       string   `json:"tutor_id"`
	Subjects      []string `json:"subjects,omitempty"` // canonical codes or parent categories
	Levels        []string `json:"levels,omitempty"`
	PostalCode    string   `json:"postal_code,omitempty"`
	Lat           *float64 `json:"lat,omitempty"`
	Lon           *float64 `json:"lon,omitempty"`
	MaxDistanceKm *float64 `json:"max_distance_km,omitempty"`
	DMChatID      string   `json:"dm_chat_id"`
	Active        bool     `json:"active"`
}
