package usecase

import (
	"context"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/ardiansetya/goblast/internal/pkg/clock"
	"github.com/ardiansetya/goblast/internal/pkg/config"
	"github.com/ardiansetya/goblast/internal/pkg/goerror"
	"github.com/ardiansetya/goblast/internal/pkg/goroutine"
	"github.com/ardiansetya/goblast/internal/pkg/idempotency"
	"github.com/ardiansetya/goblast/internal/pkg/instrument"
	"github.com/ardiansetya/goblast/internal/pkg/jwt"
	"github.com/ardiansetya/goblast/internal/pkg/mail"
	"github.com/ardiansetya/goblast/internal/pkg/spreadsheet"
	"github.com/ardiansetya/goblast/internal/pkg/storage"
	"github.com/ardiansetya/goblast/internal/pkg/uid"
	"github.com/ardiansetya/goblast/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

// BatchCreatedEvent is published right after a batch has been persisted.
type BatchCreatedEvent struct {
	BatchID int64
	UserID  int64
	Total   int
	Pending int
	Failed  int
}

// BatchCompletedEvent is published when a dispatch loop finishes.
type BatchCompletedEvent struct {
	BatchID int64
	UserID  int64
	Counts  entity.StatusCounts
}

type repoMessaging interface {
	PublishBatchCreated(ctx context.Context, msg BatchCreatedEvent) error
	PublishBatchCompleted(ctx context.Context, msg BatchCompletedEvent) error
}

type repoDB interface {
	CreateRecords(ctx context.Context, records []entity.EmailRecord) error
	GetPendingRecords(ctx context.Context, userID, batchID int64) ([]entity.EmailRecord, error)
	GetLatestBatchID(ctx context.Context, userID int64) (int64, error)
	ListRecords(ctx context.Context, filter entity.LogFilter) ([]entity.EmailRecord, int64, error)
	CountByStatus(ctx context.Context, userID, batchID int64) (entity.StatusCounts, error)
	UpdateRecordStatus(ctx context.Context, id int64, status entity.Status, errMsg *string) error
	DeleteRecords(ctx context.Context, userID int64, ids []int64) (int64, error)
	DeleteAllRecords(ctx context.Context, userID int64) (int64, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	mail          mail.Mail
	reader        spreadsheet.Reader
	storage       storage.Storage
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	clock         clock.Clocker
	goroutine     *goroutine.Manager
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Mail          mail.Mail
	Reader        spreadsheet.Reader
	Storage       storage.Storage
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	Clock         clock.Clocker
	Goroutine     *goroutine.Manager
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		mail:          dep.Mail,
		reader:        dep.Reader,
		storage:       dep.Storage,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		clock:         dep.Clock,
		goroutine:     dep.Goroutine,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("mailer.usecase").Start(ctx, name)
}

func (s *Usecase) authenticated(ctx context.Context) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	return clm, nil
}
