package responses

import "time"

type AdminLogin struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
