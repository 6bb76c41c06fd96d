// Package app wires dependencies and manages the service lifecycle.
package app

import (
	"context"
	"net/http"

	"github.com/ardiansetya/goblast/internal/pkg/clock"
	"github.com/ardiansetya/goblast/internal/pkg/config"
	"github.com/ardiansetya/goblast/internal/pkg/goroutine"
	"github.com/ardiansetya/goblast/internal/pkg/hash"
	"github.com/ardiansetya/goblast/internal/pkg/idempotency"
	"github.com/ardiansetya/goblast/internal/pkg/instrument"
	"github.com/ardiansetya/goblast/internal/pkg/jwt"
	"github.com/ardiansetya/goblast/internal/pkg/mail"
	"github.com/ardiansetya/goblast/internal/pkg/messaging"
	"github.com/ardiansetya/goblast/internal/pkg/router"
	"github.com/ardiansetya/goblast/internal/pkg/spreadsheet"
	"github.com/ardiansetya/goblast/internal/pkg/storage"
	"github.com/ardiansetya/goblast/internal/pkg/uid"
	"github.com/ardiansetya/goblast/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	jwt       jwt.JWT
	reader    spreadsheet.Reader

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail
	messaging messaging.Messaging
	storage   storage.Storage

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
