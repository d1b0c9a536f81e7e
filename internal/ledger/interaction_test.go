package ledger

import (
	"context"
	"errors"
	"testing"

	"socialfit/internal/model"
	"socialfit/internal/store"
)

func TestInteractionLedger_ToggleLike_RoundTrip(t *testing.T) {
	l := NewInteractionLedger(store.NewMemoryStore())
	ctx := context.Background()

	status, err := l.ToggleLike(ctx, "post-1", "u1")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !status.Liked || status.TotalLikes != 1 {
		t.Errorf("first toggle = %+v, want {Liked:true TotalLikes:1}", status)
	}

	status, err = l.ToggleLike(ctx, "post-1", "u1")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if status.Liked || status.TotalLikes != 0 {
		t.Errorf("second toggle = %+v, want {Liked:false TotalLikes:0}", status)
	}
}

func TestInteractionLedger_ToggleLike_MultipleUsers(t *testing.T) {
	l := NewInteractionLedger(store.NewMemoryStore())
	ctx := context.Background()

	for _, u := range []string{"u1", "u2", "u3"} {
		if _, err := l.ToggleLike(ctx, "post-1", u); err != nil {
			t.Fatalf("toggle %s: %v", u, err)
		}
	}

	total, err := l.TotalLikes(ctx, "post-1")
	if err != nil {
		t.Fatalf("totalLikes: %v", err)
	}
	if total != 3 {
		t.Errorf("totalLikes = %d, want 3", total)
	}

	// u2 untoggling leaves the other two likes in place.
	status, err := l.ToggleLike(ctx, "post-1", "u2")
	if err != nil {
		t.Fatalf("untoggle u2: %v", err)
	}
	if status.Liked || status.TotalLikes != 2 {
		t.Errorf("untoggle = %+v, want {Liked:false TotalLikes:2}", status)
	}

	liked, _ := l.IsLiked(ctx, "post-1", "u1")
	if !liked {
		t.Error("u1's like should survive u2's untoggle")
	}
}

func TestInteractionLedger_Reads_UnknownActivity(t *testing.T) {
	st := store.NewMemoryStore()
	l := NewInteractionLedger(st)
	ctx := context.Background()

	liked, err := l.IsLiked(ctx, "ghost", "u1")
	if err != nil || liked {
		t.Errorf("isLiked = (%t, %v), want (false, nil)", liked, err)
	}

	total, err := l.TotalLikes(ctx, "ghost")
	if err != nil || total != 0 {
		t.Errorf("totalLikes = (%d, %v), want (0, nil)", total, err)
	}

	comments, err := l.ListComments(ctx, "ghost")
	if err != nil {
		t.Fatalf("listComments: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("comments = %v, want empty", comments)
	}

	// Pure reads must not materialize the activity in the store.
	doc := model.InteractionDocument{}
	if err := st.Load(ctx, store.CollectionInteractions, &doc); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := doc["ghost"]; ok {
		t.Error("read materialized an activity record")
	}
}

func TestInteractionLedger_AddComment(t *testing.T) {
	l := NewInteractionLedger(store.NewMemoryStore())
	ctx := context.Background()

	avatar := "https://cdn.example.com/avatars/u1.jpg"
	comment, err := l.AddComment(ctx, "post-1", "u1", "hello", "Ana", &avatar)
	if err != nil {
		t.Fatalf("addComment: %v", err)
	}

	if comment.ID == "" {
		t.Error("comment id should be generated")
	}
	if comment.CreatedAt.IsZero() {
		t.Error("comment timestamp should be set")
	}
	if comment.ActivityID != "post-1" || comment.AuthorID != "u1" || comment.Text != "hello" {
		t.Errorf("stored comment = %+v", comment)
	}
	if comment.AuthorAvatar == nil || *comment.AuthorAvatar != avatar {
		t.Errorf("author avatar = %v, want %q", comment.AuthorAvatar, avatar)
	}

	comments, err := l.ListComments(ctx, "post-1")
	if err != nil {
		t.Fatalf("listComments: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("comments = %d, want 1", len(comments))
	}
	last := comments[len(comments)-1]
	if last.Text != "hello" || last.AuthorID != "u1" {
		t.Errorf("last comment = %+v", last)
	}
}

func TestInteractionLedger_AddComment_Empty(t *testing.T) {
	l := NewInteractionLedger(store.NewMemoryStore())

	cases := []string{"", "   ", "\n\t"}
	for _, text := range cases {
		_, err := l.AddComment(context.Background(), "post-1", "u1", text, "Ana", nil)
		if !errors.Is(err, model.ErrEmptyComment) {
			t.Errorf("text %q: error = %v, want ErrEmptyComment", text, err)
		}
	}
}

func TestInteractionLedger_ListComments_InsertionOrder(t *testing.T) {
	l := NewInteractionLedger(store.NewMemoryStore())
	ctx := context.Background()

	texts := []string{"first", "second", "third"}
	for _, text := range texts {
		if _, err := l.AddComment(ctx, "post-1", "u1", text, "Ana", nil); err != nil {
			t.Fatalf("addComment %q: %v", text, err)
		}
	}

	comments, err := l.ListComments(ctx, "post-1")
	if err != nil {
		t.Fatalf("listComments: %v", err)
	}
	if len(comments) != len(texts) {
		t.Fatalf("comments = %d, want %d", len(comments), len(texts))
	}
	for i, want := range texts {
		if comments[i].Text != want {
			t.Errorf("comments[%d].Text = %q, want %q", i, comments[i].Text, want)
		}
	}
}

func TestInteractionLedger_RemoveComment(t *testing.T) {
	l := NewInteractionLedger(store.NewMemoryStore())
	ctx := context.Background()

	comment, err := l.AddComment(ctx, "post-1", "u1", "hello", "Ana", nil)
	if err != nil {
		t.Fatalf("addComment: %v", err)
	}

	if err := l.RemoveComment(ctx, "post-1", comment.ID, "u1"); err != nil {
		t.Fatalf("removeComment: %v", err)
	}

	comments, _ := l.ListComments(ctx, "post-1")
	if len(comments) != 0 {
		t.Errorf("comments = %d, want 0 after removal", len(comments))
	}
}

func TestInteractionLedger_RemoveComment_NotOwner(t *testing.T) {
	l := NewInteractionLedger(store.NewMemoryStore())
	ctx := context.Background()

	comment, err := l.AddComment(ctx, "post-1", "u1", "hello", "Ana", nil)
	if err != nil {
		t.Fatalf("addComment: %v", err)
	}

	err = l.RemoveComment(ctx, "post-1", comment.ID, "u2")
	if !errors.Is(err, model.ErrNotCommentOwner) {
		t.Fatalf("error = %v, want ErrNotCommentOwner", err)
	}

	// The comment stays in place after a rejected removal.
	comments, _ := l.ListComments(ctx, "post-1")
	if len(comments) != 1 {
		t.Errorf("comments = %d, want 1", len(comments))
	}
}

func TestInteractionLedger_RemoveComment_NotFound(t *testing.T) {
	l := NewInteractionLedger(store.NewMemoryStore())
	ctx := context.Background()

	err := l.RemoveComment(ctx, "ghost", "c1", "u1")
	if !errors.Is(err, model.ErrCommentNotFound) {
		t.Fatalf("unknown activity: error = %v, want ErrCommentNotFound", err)
	}

	if _, err := l.AddComment(ctx, "post-1", "u1", "hello", "Ana", nil); err != nil {
		t.Fatalf("addComment: %v", err)
	}
	err = l.RemoveComment(ctx, "post-1", "no-such-comment", "u1")
	if !errors.Is(err, model.ErrCommentNotFound) {
		t.Fatalf("unknown comment: error = %v, want ErrCommentNotFound", err)
	}
}

func TestInteractionLedger_StoreUnavailable(t *testing.T) {
	saveErr := errors.Join(model.ErrStoreUnavailable, errors.New("connection refused"))
	l := NewInteractionLedger(&failingStore{saveErr: saveErr})

	_, err := l.ToggleLike(context.Background(), "post-1", "u1")
	if !errors.Is(err, model.ErrStoreUnavailable) {
		t.Fatalf("error = %v, want ErrStoreUnavailable", err)
	}
}
