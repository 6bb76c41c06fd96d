package db

import (
	"context"

	"github.com/ardiansetya/goblast/internal/identity/entity"
)

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	const query = `
		SELECT id, email, password, created_at
		FROM identity_users
		WHERE email = $1`

	var user entity.User
	err = s.conn.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &user, nil
}
