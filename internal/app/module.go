package app

import (
	"log/slog"
	"os"

	"github.com/ardiansetya/goblast/internal/identity"
	"github.com/ardiansetya/goblast/internal/mailer"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Instrument: a.ins,
			UID:        a.uid,
			Bcrypt:     a.bcrypt,
			Clock:      a.clock,
			Validator:  a.validator,
			JWT:        a.jwt,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.mailer.enabled") {
		if err := mailer.New(mailer.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Instrument:  a.ins,
			Messaging:   a.messaging,
			Storage:     a.storage,
			Mail:        a.mail,
			Reader:      a.reader,
			Idempotency: a.idemp,
			Config:      a.config,
			UID:         a.uid,
			Clock:       a.clock,
			Validator:   a.validator,
			Goroutine:   a.goroutine,
		}); err != nil {
			slog.Error("failed to init module mailer", "error", err)
			os.Exit(1)
		}
	}
}
