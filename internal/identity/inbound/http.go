package inbound

import (
	"context"

	"github.com/ardiansetya/goblast/internal/identity/usecase"
	"github.com/ardiansetya/goblast/internal/pkg/router"
)

type uc interface {
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Register(ctx context.Context, in usecase.RegisterInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/identity/register", end.Register)
	r.POST("/api/v1/identity/login", end.Login)
}
