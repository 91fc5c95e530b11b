package core

import (
	"fmt"
	"strings"
	"time"
)

// SessionType distinguishes a full shelf-to-shelf count from a quick
// restock check of the fast movers.
type SessionType string

const (
	SessionFullCount    SessionType = "full_count"
	SessionQuickRestock SessionType = "quick_restock"
)

// Valid reports whether t is a defined session type.
func (t SessionType) Valid() bool {
	return t == SessionFullCount || t == SessionQuickRestock
}

// StockSession names one counting run. At most one session is active at a
// time; starting a new one deactivates the rest.
type StockSession struct {
	ID          string
	SessionName string
	SessionDate time.Time
	SessionType SessionType
	IsActive    bool
	Notes       *string
}

// SessionInput holds the fields required to start a counting session.
type SessionInput struct {
	SessionName string
	SessionType SessionType
	Notes       string
}

// Normalize trims the name and defaults the type to a full count.
func (in *SessionInput) Normalize() {
	in.SessionName = strings.TrimSpace(in.SessionName)
	if in.SessionType == "" {
		in.SessionType = SessionFullCount
	}
}

// Validate checks the session fields.
func (in SessionInput) Validate() error {
	if in.SessionName == "" {
		return fmt.Errorf("session name is required")
	}
	if !in.SessionType.Valid() {
		return fmt.Errorf("unknown session type %q", string(in.SessionType))
	}
	return nil
}
