package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"socialfit/internal/model"
	"socialfit/internal/store"
)

// InteractionLedger owns per-activity like sets and comment lists. Activities
// are opaque ids minted by the authoring flow; the first reference to one
// lazily materializes its record. Mutations are one load-mutate-save cycle
// against the interactions collection; reads never write.
type InteractionLedger struct {
	store store.Store
}

func NewInteractionLedger(st store.Store) *InteractionLedger {
	return &InteractionLedger{store: st}
}

// ToggleLike flips the user's membership in the activity's like set. The
// returned status reflects the persisted state at the instant of return: two
// toggles by the same user are a round trip back to the original state.
func (l *InteractionLedger) ToggleLike(ctx context.Context, activityID, userID string) (model.LikeStatus, error) {
	doc, err := l.loadDocument(ctx)
	if err != nil {
		return model.LikeStatus{}, err
	}

	rec := ensureRecord(doc, activityID)
	idx := likeIndex(rec.Likes, userID)
	if idx == -1 {
		rec.Likes = append(rec.Likes, userID)
	} else {
		rec.Likes = append(rec.Likes[:idx], rec.Likes[idx+1:]...)
	}

	if err := l.store.Save(ctx, store.CollectionInteractions, doc); err != nil {
		return model.LikeStatus{}, err
	}

	return model.LikeStatus{
		Liked:      idx == -1,
		TotalLikes: len(rec.Likes),
	}, nil
}

// IsLiked reports whether the user has liked the activity. Unknown activities
// read as false.
func (l *InteractionLedger) IsLiked(ctx context.Context, activityID, userID string) (bool, error) {
	doc, err := l.loadDocument(ctx)
	if err != nil {
		return false, err
	}

	rec, ok := doc[activityID]
	if !ok {
		return false, nil
	}
	return likeIndex(rec.Likes, userID) != -1, nil
}

// TotalLikes returns the like count for an activity. Unknown activities read
// as zero.
func (l *InteractionLedger) TotalLikes(ctx context.Context, activityID string) (int, error) {
	doc, err := l.loadDocument(ctx)
	if err != nil {
		return 0, err
	}

	rec, ok := doc[activityID]
	if !ok {
		return 0, nil
	}
	return len(rec.Likes), nil
}

// AddComment appends a comment to the activity's list and returns the stored
// comment including its generated id and timestamp.
func (l *InteractionLedger) AddComment(ctx context.Context, activityID, authorID, text, authorName string, authorAvatar *string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.ErrEmptyComment
	}

	doc, err := l.loadDocument(ctx)
	if err != nil {
		return nil, err
	}

	comment := model.Comment{
		ID:           uuid.NewString(),
		ActivityID:   activityID,
		AuthorID:     authorID,
		AuthorName:   authorName,
		AuthorAvatar: authorAvatar,
		Text:         text,
		CreatedAt:    time.Now().UTC(),
	}

	rec := ensureRecord(doc, activityID)
	rec.Comments = append(rec.Comments, comment)

	if err := l.store.Save(ctx, store.CollectionInteractions, doc); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns the activity's comments in insertion order, oldest
// first. Each call re-reads current state; there is no cursor.
func (l *InteractionLedger) ListComments(ctx context.Context, activityID string) ([]model.Comment, error) {
	doc, err := l.loadDocument(ctx)
	if err != nil {
		return nil, err
	}

	rec, ok := doc[activityID]
	if !ok {
		return []model.Comment{}, nil
	}
	return rec.Comments, nil
}

// RemoveComment deletes a comment. Only the author may remove their own
// comment; anyone else gets ErrNotCommentOwner with the comment left intact.
func (l *InteractionLedger) RemoveComment(ctx context.Context, activityID, commentID, requesterID string) error {
	doc, err := l.loadDocument(ctx)
	if err != nil {
		return err
	}

	rec, ok := doc[activityID]
	if !ok {
		return model.ErrCommentNotFound
	}

	idx := -1
	for i, c := range rec.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.ErrCommentNotFound
	}
	if rec.Comments[idx].AuthorID != requesterID {
		return model.ErrNotCommentOwner
	}

	rec.Comments = append(rec.Comments[:idx], rec.Comments[idx+1:]...)
	return l.store.Save(ctx, store.CollectionInteractions, doc)
}

func (l *InteractionLedger) loadDocument(ctx context.Context) (model.InteractionDocument, error) {
	doc := model.InteractionDocument{}
	if err := l.store.Load(ctx, store.CollectionInteractions, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func ensureRecord(doc model.InteractionDocument, activityID string) *model.InteractionRecord {
	rec, ok := doc[activityID]
	if !ok {
		rec = &model.InteractionRecord{}
		doc[activityID] = rec
	}
	return rec
}

func likeIndex(likes []string, userID string) int {
	for i, id := range likes {
		if id == userID {
			return i
		}
	}
	return -1
}
