// Package mailer wires the batch email dispatch module: uploads, dispatch,
// status, logs and deletion.
package mailer

import (
	"github.com/ardiansetya/goblast/internal/mailer/inbound"
	"github.com/ardiansetya/goblast/internal/mailer/outbound/db"
	"github.com/ardiansetya/goblast/internal/mailer/outbound/mq"
	"github.com/ardiansetya/goblast/internal/mailer/usecase"
	"github.com/ardiansetya/goblast/internal/pkg/clock"
	"github.com/ardiansetya/goblast/internal/pkg/config"
	"github.com/ardiansetya/goblast/internal/pkg/goroutine"
	"github.com/ardiansetya/goblast/internal/pkg/idempotency"
	"github.com/ardiansetya/goblast/internal/pkg/instrument"
	"github.com/ardiansetya/goblast/internal/pkg/mail"
	"github.com/ardiansetya/goblast/internal/pkg/messaging"
	"github.com/ardiansetya/goblast/internal/pkg/router"
	"github.com/ardiansetya/goblast/internal/pkg/spreadsheet"
	"github.com/ardiansetya/goblast/internal/pkg/storage"
	"github.com/ardiansetya/goblast/internal/pkg/uid"
	"github.com/ardiansetya/goblast/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Storage     storage.Storage            `validate:"required"`
	Mail        mail.Mail                  `validate:"required"`
	Reader      spreadsheet.Reader         `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Config      config.Config              `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbMailer := db.NewDB(dep.DBConn, dep.Instrument)
	mqMailer := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbMailer,
		RepoMessaging: mqMailer,
		Mail:          dep.Mail,
		Reader:        dep.Reader,
		Storage:       dep.Storage,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		UID:           dep.UID,
		Clock:         dep.Clock,
		Goroutine:     dep.Goroutine,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
