package session

import (
	"context"

	"clinic-portal/models"
)

// Flash is a transient banner shown once on the next dashboard render.
type Flash struct {
	Success string `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Store holds the authenticated role and profile snapshot between requests.
// Get returns (nil, nil) when no session exists for the id. Sessions never
// expire on their own; only Clear removes them.
type Store interface {
	Get(ctx context.Context, sid string) (*models.Session, error)
	Set(ctx context.Context, sid string, sess *models.Session) error
	Clear(ctx context.Context, sid string) error

	// SetFlash stores a banner that auto-clears after the store's fixed TTL.
	// PopFlash returns it at most once, or (nil, nil) when none is pending.
	SetFlash(ctx context.Context, sid string, f Flash) error
	PopFlash(ctx context.Context, sid string) (*Flash, error)
}
