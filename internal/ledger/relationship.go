package ledger

import (
	"context"
	"time"

	"socialfit/internal/model"
	"socialfit/internal/store"
)

// RelationshipLedger owns the directed follow graph: the edge set and the
// denormalized per-user counters. Every mutation is one load-mutate-save
// cycle against the relationships collection, so the edge write and both
// counter updates land in the same save. Nothing is cached between calls.
type RelationshipLedger struct {
	store store.Store
}

func NewRelationshipLedger(st store.Store) *RelationshipLedger {
	return &RelationshipLedger{store: st}
}

// Follow inserts the (follower, followee) edge and bumps both counters.
func (l *RelationshipLedger) Follow(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		return model.ErrCannotFollowSelf
	}

	var doc model.RelationshipDocument
	if err := l.store.Load(ctx, store.CollectionRelationships, &doc); err != nil {
		return err
	}

	if edgeIndex(doc.Edges, followerID, followeeID) != -1 {
		return model.ErrAlreadyFollowing
	}

	doc.Edges = append(doc.Edges, model.FollowEdge{
		FollowerID: followerID,
		FolloweeID: followeeID,
		CreatedAt:  time.Now().UTC(),
	})
	applyCounterDelta(&doc, followerID, followeeID, 1)

	return l.store.Save(ctx, store.CollectionRelationships, &doc)
}

// Unfollow removes the edge and decrements both counters. The edge check
// happens before any counter mutation, so a missing edge can never drive a
// counter below zero.
func (l *RelationshipLedger) Unfollow(ctx context.Context, followerID, followeeID string) error {
	var doc model.RelationshipDocument
	if err := l.store.Load(ctx, store.CollectionRelationships, &doc); err != nil {
		return err
	}

	idx := edgeIndex(doc.Edges, followerID, followeeID)
	if idx == -1 {
		return model.ErrNotFollowing
	}

	doc.Edges = append(doc.Edges[:idx], doc.Edges[idx+1:]...)
	applyCounterDelta(&doc, followerID, followeeID, -1)

	return l.store.Save(ctx, store.CollectionRelationships, &doc)
}

// IsFollowing reports whether the (follower, followee) edge exists in the
// latest committed state.
func (l *RelationshipLedger) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	var doc model.RelationshipDocument
	if err := l.store.Load(ctx, store.CollectionRelationships, &doc); err != nil {
		return false, err
	}
	return edgeIndex(doc.Edges, followerID, followeeID) != -1, nil
}

// Counters returns the follower/following counts for a user. An unknown user
// reads as {0, 0}; that is not an error condition.
func (l *RelationshipLedger) Counters(ctx context.Context, userID string) (model.FollowCounters, error) {
	var doc model.RelationshipDocument
	if err := l.store.Load(ctx, store.CollectionRelationships, &doc); err != nil {
		return model.FollowCounters{}, err
	}
	return doc.Counters[userID], nil
}

// Followers returns the ids of users following userID.
func (l *RelationshipLedger) Followers(ctx context.Context, userID string) ([]string, error) {
	var doc model.RelationshipDocument
	if err := l.store.Load(ctx, store.CollectionRelationships, &doc); err != nil {
		return nil, err
	}

	var ids []string
	for _, e := range doc.Edges {
		if e.FolloweeID == userID {
			ids = append(ids, e.FollowerID)
		}
	}
	return ids, nil
}

// Following returns the ids of users that userID follows.
func (l *RelationshipLedger) Following(ctx context.Context, userID string) ([]string, error) {
	var doc model.RelationshipDocument
	if err := l.store.Load(ctx, store.CollectionRelationships, &doc); err != nil {
		return nil, err
	}

	var ids []string
	for _, e := range doc.Edges {
		if e.FollowerID == userID {
			ids = append(ids, e.FolloweeID)
		}
	}
	return ids, nil
}

func edgeIndex(edges []model.FollowEdge, followerID, followeeID string) int {
	for i, e := range edges {
		if e.FollowerID == followerID && e.FolloweeID == followeeID {
			return i
		}
	}
	return -1
}

// applyCounterDelta updates both sides of the counter cache: the follower's
// following count and the followee's followers count. Decrements are clamped
// at zero; counters must never go negative.
func applyCounterDelta(doc *model.RelationshipDocument, followerID, followeeID string, delta int) {
	if doc.Counters == nil {
		doc.Counters = make(map[string]model.FollowCounters)
	}

	follower := doc.Counters[followerID]
	follower.Following = clampNonNegative(follower.Following + delta)
	doc.Counters[followerID] = follower

	followee := doc.Counters[followeeID]
	followee.Followers = clampNonNegative(followee.Followers + delta)
	doc.Counters[followeeID] = followee
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
