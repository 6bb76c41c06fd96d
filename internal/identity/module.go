// Package identity wires the account module: registration and login.
package identity

import (
	"github.com/ardiansetya/goblast/internal/identity/inbound"
	"github.com/ardiansetya/goblast/internal/identity/outbound/db"
	"github.com/ardiansetya/goblast/internal/identity/usecase"
	"github.com/ardiansetya/goblast/internal/pkg/clock"
	"github.com/ardiansetya/goblast/internal/pkg/hash"
	"github.com/ardiansetya/goblast/internal/pkg/instrument"
	"github.com/ardiansetya/goblast/internal/pkg/jwt"
	"github.com/ardiansetya/goblast/internal/pkg/router"
	"github.com/ardiansetya/goblast/internal/pkg/uid"
	"github.com/ardiansetya/goblast/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAuth,
		Validator:  dep.Validator,
		Bcrypt:     dep.Bcrypt,
		UID:        dep.UID,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
