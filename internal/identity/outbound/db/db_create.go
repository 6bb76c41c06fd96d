package db

import (
	"context"

	"github.com/ardiansetya/goblast/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	const query = `
		INSERT INTO identity_users (id, email, password, created_at)
		VALUES ($1, $2, $3, $4)`

	_, err = s.conn.Exec(ctx, query, user.ID, user.Email, user.Password, user.CreatedAt)

	return s.mapError(err)
}
