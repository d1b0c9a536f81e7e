package ledger

import (
	"context"
	"strings"

	"socialfit/internal/model"
	"socialfit/internal/store"
)

// UserDirectory owns the users collection. It gets the same load-mutate-save
// treatment as the other ledgers: the whole document moves per operation.
type UserDirectory struct {
	store store.Store
}

func NewUserDirectory(st store.Store) *UserDirectory {
	return &UserDirectory{store: st}
}

// Create persists a prepared user. Emails are unique, compared
// case-insensitively.
func (d *UserDirectory) Create(ctx context.Context, user *model.User) error {
	var doc model.UsersDocument
	if err := d.store.Load(ctx, store.CollectionUsers, &doc); err != nil {
		return err
	}

	for _, u := range doc.Users {
		if strings.EqualFold(u.Email, user.Email) {
			return model.ErrEmailExists
		}
	}

	doc.Users = append(doc.Users, *user)
	return d.store.Save(ctx, store.CollectionUsers, &doc)
}

func (d *UserDirectory) GetByID(ctx context.Context, id string) (*model.User, error) {
	var doc model.UsersDocument
	if err := d.store.Load(ctx, store.CollectionUsers, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Users {
		if doc.Users[i].ID == id {
			u := doc.Users[i]
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (d *UserDirectory) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var doc model.UsersDocument
	if err := d.store.Load(ctx, store.CollectionUsers, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Users {
		if strings.EqualFold(doc.Users[i].Email, email) {
			u := doc.Users[i]
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

// SetAvatar updates a user's avatar URL.
func (d *UserDirectory) SetAvatar(ctx context.Context, id, avatarURL string) error {
	var doc model.UsersDocument
	if err := d.store.Load(ctx, store.CollectionUsers, &doc); err != nil {
		return err
	}

	for i := range doc.Users {
		if doc.Users[i].ID == id {
			doc.Users[i].AvatarURL = &avatarURL
			return d.store.Save(ctx, store.CollectionUsers, &doc)
		}
	}
	return model.ErrUserNotFound
}

// List returns the public view of every user.
func (d *UserDirectory) List(ctx context.Context) ([]model.UserSummary, error) {
	var doc model.UsersDocument
	if err := d.store.Load(ctx, store.CollectionUsers, &doc); err != nil {
		return nil, err
	}

	summaries := make([]model.UserSummary, 0, len(doc.Users))
	for i := range doc.Users {
		summaries = append(summaries, doc.Users[i].Summary())
	}
	return summaries, nil
}
