package models

import "time"

type AdminSession struct {
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *AdminSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
