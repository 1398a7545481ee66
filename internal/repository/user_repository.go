package repository

import (
	"context"

	"verse-report/internal/domain/entity"
)

type UserRepository interface {
	// Get returns (nil, nil) when the id does not exist.
	Get(ctx context.Context, id string) (*entity.User, error)
	// RolesFor returns the role names assigned to the user via the
	// user_roles join table. An unknown user simply has no roles.
	RolesFor(ctx context.Context, userID string) ([]string, error)
}
