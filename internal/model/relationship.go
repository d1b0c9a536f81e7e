package model

import (
	"errors"
	"time"
)

// FollowEdge is a directed follow relationship. At most one edge exists per
// ordered (follower, followee) pair and self-edges are rejected.
type FollowEdge struct {
	FollowerID string    `json:"follower_id"`
	FolloweeID string    `json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// FollowCounters are the denormalized per-user counts. They are derived state:
// both sides are updated in the same save as the edge write, so they always
// match the counts reconstructible from the edge set.
type FollowCounters struct {
	Followers int `json:"followers"`
	Following int `json:"following"`
}

// RelationshipDocument is the persisted shape of the relationships collection.
type RelationshipDocument struct {
	Edges    []FollowEdge              `json:"edges"`
	Counters map[string]FollowCounters `json:"counters"`
}

// ProfileSummary is the aggregated profile view served to the UI.
type ProfileSummary struct {
	UserID             string `json:"user_id"`
	Followers          int    `json:"followers"`
	Following          int    `json:"following"`
	IsFollowedByViewer bool   `json:"is_followed_by_viewer"`
}

// Relationship errors
var (
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
)
