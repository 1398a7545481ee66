package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"verse-report/internal/domain/entity"
	"verse-report/internal/repository"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Get(ctx context.Context, id string) (*entity.User, error) {
	const query = `SELECT id, name, email FROM users WHERE id = $1 LIMIT 1`

	var u entity.User
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &u, nil
}

func (repo *UserRepo) RolesFor(ctx context.Context, userID string) ([]string, error) {
	const query = `
SELECT r.name
FROM user_roles ur
INNER JOIN roles r ON ur.role_id = r.id
WHERE ur.user_id = $1
ORDER BY r.name`

	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("RolesFor: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var roles []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("RolesFor: Scan: %w", err)
		}
		roles = append(roles, name)
	}
	return roles, rows.Err()
}
