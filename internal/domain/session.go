package domain

import "time"

// AdminSession expires 24h after login. Expiry is advisory: no request path
// checks it, the worker sweep just deletes stale rows.
type AdminSession struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	LoginTime time.Time `json:"login_time"`
	ExpiresAt time.Time `json:"expires_at"`
}

const SessionTTL = 24 * time.Hour
