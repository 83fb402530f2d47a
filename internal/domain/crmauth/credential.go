// Package crmauth stores the OAuth credentials issued by the CRM during the
// marketplace install flow. The CRM client reads the latest credential to
// authorize outbound calls; webhooks validate their location id against it.
package crmauth

import (
	"context"
	"fmt"
	"time"
)

// Credential is one stored OAuth grant for a CRM location.
type Credential struct {
	ID           uint
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	LocationID   string
	CompanyID    string
	UserID       string
	Scope        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCredential validates the fields the client cannot operate without.
func NewCredential(accessToken, refreshToken, locationID string, expiresAt time.Time) (*Credential, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("access token is required")
	}
	if locationID == "" {
		return nil, fmt.Errorf("location id is required")
	}
	return &Credential{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		LocationID:   locationID,
		ExpiresAt:    expiresAt,
	}, nil
}

// Expired reports whether the access token is past its expiry.
func (c *Credential) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Repository persists CRM credentials keyed by location.
type Repository interface {
	// Upsert stores a credential, replacing any existing row for the same
	// location id. Token refresh rewrites the row in place.
	Upsert(ctx context.Context, c *Credential) error
	GetByLocationID(ctx context.Context, locationID string) (*Credential, error)
	// GetLatest returns the most recently updated credential. The quoting
	// backend serves a single CRM location in practice.
	GetLatest(ctx context.Context) (*Credential, error)
}
