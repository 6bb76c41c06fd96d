package inbound

import (
	"context"

	"github.com/ardiansetya/goblast/internal/mailer/usecase"
	"github.com/ardiansetya/goblast/internal/pkg/router"
)

type uc interface {
	Upload(ctx context.Context, in usecase.UploadInput) (*usecase.UploadOutput, error)
	BatchStatus(ctx context.Context, in usecase.BatchStatusInput) (*usecase.BatchStatusOutput, error)
	Logs(ctx context.Context, in usecase.LogsInput) (*usecase.LogsOutput, error)
	Delete(ctx context.Context, in usecase.DeleteInput) (*usecase.DeleteOutput, error)
	Clear(ctx context.Context) (*usecase.DeleteOutput, error)
	ValidateSMTP(ctx context.Context, in usecase.ValidateSMTPInput) (*usecase.ValidateSMTPOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/mailer/batches", end.Upload)
	r.GET("/api/v1/mailer/batches/status", end.BatchStatus)
	r.GET("/api/v1/mailer/logs", end.Logs)
	r.DELETE("/api/v1/mailer/emails", end.Delete)
	r.DELETE("/api/v1/mailer/emails/clear", end.Clear)
	r.POST("/api/v1/smtp/validate", end.ValidateSMTP)
}
