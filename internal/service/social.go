package service

import (
	"context"
	"log"

	"socialfit/internal/ledger"
	"socialfit/internal/model"
)

// SocialService is the aggregation facade consumed by the transport layer. It
// composes the relationship and interaction ledgers without adding invariants
// of its own; ledger errors pass through unchanged.
type SocialService struct {
	relationships *ledger.RelationshipLedger
	interactions  *ledger.InteractionLedger
}

func NewSocialService(
	relationships *ledger.RelationshipLedger,
	interactions *ledger.InteractionLedger,
) *SocialService {
	return &SocialService{
		relationships: relationships,
		interactions:  interactions,
	}
}

func (s *SocialService) Follow(ctx context.Context, followerID, followeeID string) error {
	if err := s.relationships.Follow(ctx, followerID, followeeID); err != nil {
		return err
	}
	log.Printf("[SocialService] user %s followed %s", followerID, followeeID)
	return nil
}

func (s *SocialService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	if err := s.relationships.Unfollow(ctx, followerID, followeeID); err != nil {
		return err
	}
	log.Printf("[SocialService] user %s unfollowed %s", followerID, followeeID)
	return nil
}

func (s *SocialService) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	return s.relationships.IsFollowing(ctx, followerID, followeeID)
}

func (s *SocialService) Counters(ctx context.Context, userID string) (model.FollowCounters, error) {
	return s.relationships.Counters(ctx, userID)
}

// GetProfileSummary returns a user's counters plus whether the viewer follows
// them. A nil viewer (unauthenticated read) reports IsFollowedByViewer=false.
func (s *SocialService) GetProfileSummary(ctx context.Context, userID string, viewerID *string) (*model.ProfileSummary, error) {
	counters, err := s.relationships.Counters(ctx, userID)
	if err != nil {
		return nil, err
	}

	followed := false
	if viewerID != nil && *viewerID != userID {
		followed, err = s.relationships.IsFollowing(ctx, *viewerID, userID)
		if err != nil {
			return nil, err
		}
	}

	return &model.ProfileSummary{
		UserID:             userID,
		Followers:          counters.Followers,
		Following:          counters.Following,
		IsFollowedByViewer: followed,
	}, nil
}

func (s *SocialService) ToggleLike(ctx context.Context, activityID, userID string) (model.LikeStatus, error) {
	status, err := s.interactions.ToggleLike(ctx, activityID, userID)
	if err != nil {
		return model.LikeStatus{}, err
	}
	log.Printf("[SocialService] user %s toggled like on %s: liked=%t total=%d",
		userID, activityID, status.Liked, status.TotalLikes)
	return status, nil
}

func (s *SocialService) IsLiked(ctx context.Context, activityID, userID string) (bool, error) {
	return s.interactions.IsLiked(ctx, activityID, userID)
}

func (s *SocialService) TotalLikes(ctx context.Context, activityID string) (int, error) {
	return s.interactions.TotalLikes(ctx, activityID)
}

func (s *SocialService) AddComment(ctx context.Context, activityID, authorID, text, authorName string, authorAvatar *string) (*model.Comment, error) {
	comment, err := s.interactions.AddComment(ctx, activityID, authorID, text, authorName, authorAvatar)
	if err != nil {
		return nil, err
	}
	log.Printf("[SocialService] user %s commented on %s: comment=%s", authorID, activityID, comment.ID)
	return comment, nil
}

func (s *SocialService) ListComments(ctx context.Context, activityID string) ([]model.Comment, error) {
	return s.interactions.ListComments(ctx, activityID)
}

func (s *SocialService) RemoveComment(ctx context.Context, activityID, commentID, requesterID string) error {
	if err := s.interactions.RemoveComment(ctx, activityID, commentID, requesterID); err != nil {
		return err
	}
	log.Printf("[SocialService] user %s removed comment %s from %s", requesterID, commentID, activityID)
	return nil
}
