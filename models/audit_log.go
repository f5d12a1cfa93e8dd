package models

import "time"

// AuditLogEntry represents a single mutating API request
type AuditLogEntry struct {
	ID        int64
	Timestamp time.Time
	Username  string
	Method    string
	Path      string
	UserAgent string
	IPAddress string
}
