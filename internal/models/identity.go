package models

import (
	"fmt"
	"time"
)

// Identity is a raw (name, email) pair observed in commit history, with
// aggregated counters. Identities are derived from commits at extraction
// time and are never persisted directly.
type Identity struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	FirstSeen   time.Time `json:"first_seen"`
	LastSeen    time.Time `json:"last_seen"`
	CommitCount int       `json:"commit_count"`
}

// Key returns the "name|email" key used to address an identity in manual
// grouping requests.
func (i *Identity) Key() string {
	return fmt.Sprintf("%s|%s", i.Name, i.Email)
}
