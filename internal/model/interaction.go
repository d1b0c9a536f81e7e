package model

import (
	"errors"
	"time"
)

// Comment is immutable once posted; only its author may remove it.
type Comment struct {
	ID           string    `json:"id"`
	ActivityID   string    `json:"activity_id"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar *string   `json:"author_avatar,omitempty"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"created_at"`
}

// InteractionRecord holds the like set and comment list for one activity.
// Likes is a set of user ids; Comments keeps insertion order (oldest first).
type InteractionRecord struct {
	Likes    []string  `json:"likes"`
	Comments []Comment `json:"comments"`
}

// InteractionDocument is the persisted shape of the interactions collection,
// keyed by activity id. An activity's record is materialized on first use.
type InteractionDocument map[string]*InteractionRecord

// LikeStatus is the result of a like toggle, consistent with the persisted
// state at the instant of return.
type LikeStatus struct {
	Liked      bool `json:"liked"`
	TotalLikes int  `json:"total_likes"`
}

// AddCommentRequest is the request body for posting a comment.
type AddCommentRequest struct {
	Text string `json:"text"`
}

// Interaction errors
var (
	ErrEmptyComment    = errors.New("comment text is empty")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("not the owner of this comment")
)
