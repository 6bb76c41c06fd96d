package usecase

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ardiansetya/goblast/internal/mailer/entity"
	"github.com/ardiansetya/goblast/internal/pkg/config"
	"github.com/ardiansetya/goblast/internal/pkg/goroutine"
	"github.com/ardiansetya/goblast/internal/pkg/idempotency"
	"github.com/ardiansetya/goblast/internal/pkg/instrument"
	"github.com/ardiansetya/goblast/internal/pkg/jwt"
	"github.com/ardiansetya/goblast/internal/pkg/mail"
	"github.com/ardiansetya/goblast/internal/pkg/spreadsheet"
	"github.com/ardiansetya/goblast/internal/pkg/storage"
	"github.com/ardiansetya/goblast/internal/pkg/validator"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func authCtx(userID int64) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{UserID: userID})
}

type statusUpdate struct {
	id     int64
	status entity.Status
	errMsg *string
}

type fakeDB struct {
	mu sync.Mutex

	created   []entity.EmailRecord
	createErr error

	latestBatchID int64
	latestErr     error

	counts    entity.StatusCounts
	countsErr error

	listRecords []entity.EmailRecord
	listTotal   int64
	listErr     error
	listFilter  entity.LogFilter

	updates []statusUpdate

	deleteN   int64
	deleteErr error
}

func (f *fakeDB) CreateRecords(_ context.Context, records []entity.EmailRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, records...)
	return nil
}

func (f *fakeDB) GetPendingRecords(_ context.Context, userID, batchID int64) ([]entity.EmailRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.EmailRecord
	for _, rec := range f.created {
		if rec.UserID == userID && rec.BatchID == batchID && rec.Status == entity.StatusPending {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeDB) GetLatestBatchID(_ context.Context, _ int64) (int64, error) {
	return f.latestBatchID, f.latestErr
}

func (f *fakeDB) ListRecords(_ context.Context, filter entity.LogFilter) ([]entity.EmailRecord, int64, error) {
	f.listFilter = filter
	return f.listRecords, f.listTotal, f.listErr
}

func (f *fakeDB) CountByStatus(_ context.Context, _, _ int64) (entity.StatusCounts, error) {
	return f.counts, f.countsErr
}

func (f *fakeDB) UpdateRecordStatus(_ context.Context, id int64, status entity.Status, errMsg *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, statusUpdate{id: id, status: status, errMsg: errMsg})
	return nil
}

func (f *fakeDB) DeleteRecords(_ context.Context, _ int64, _ []int64) (int64, error) {
	return f.deleteN, f.deleteErr
}

func (f *fakeDB) DeleteAllRecords(_ context.Context, _ int64) (int64, error) {
	return f.deleteN, f.deleteErr
}

func (f *fakeDB) snapshotUpdates() []statusUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]statusUpdate(nil), f.updates...)
}

type fakeMQ struct {
	mu        sync.Mutex
	created   []BatchCreatedEvent
	completed []BatchCompletedEvent
}

func (f *fakeMQ) PublishBatchCreated(_ context.Context, msg BatchCreatedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, msg)
	return nil
}

func (f *fakeMQ) PublishBatchCompleted(_ context.Context, msg BatchCompletedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.completed = append(f.completed, msg)
	return nil
}

type fakeMail struct {
	mu          sync.Mutex
	validateErr error
	sendErrs    map[string]error
	sent        []string
}

func (f *fakeMail) Close() error { return nil }

func (f *fakeMail) Validate(_ context.Context, _ mail.Credentials) error {
	return f.validateErr
}

func (f *fakeMail) Send(_ context.Context, _ mail.Credentials, msg mail.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg.To...)
	return f.sendErrs[msg.To[0]]
}

type fakeReader struct {
	ds  spreadsheet.Dataset
	err error
}

func (f *fakeReader) Read(_ []byte) (spreadsheet.Dataset, error) {
	return f.ds, f.err
}

type put struct {
	bucket string
	key    string
}

type fakeStorage struct {
	mu   sync.Mutex
	puts []put
}

func (f *fakeStorage) Close() error { return nil }

func (f *fakeStorage) PutObject(_ context.Context, bucket, key string, _ io.Reader, _ storage.PutOptions) (storage.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, put{bucket: bucket, key: key})
	return storage.ObjectInfo{Bucket: bucket, Key: key}, nil
}

func (f *fakeStorage) GetObject(_ context.Context, _, _ string) (io.ReadCloser, storage.ObjectInfo, error) {
	return nil, storage.ObjectInfo{}, nil
}

func (f *fakeStorage) DeleteObject(_ context.Context, _, _ string) error { return nil }

type fakeIdemp struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (f *fakeIdemp) Acquire(_ context.Context, _ string, _ time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (f *fakeIdemp) MarkCompleted(_ context.Context, _ string, _ time.Duration) error { return nil }

func (f *fakeIdemp) MarkFailed(_ context.Context, _ string, _ time.Duration) error { return nil }

func (f *fakeIdemp) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	f.mu.Lock()
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[key] {
		f.mu.Unlock()
		return idempotency.ErrAlreadyCompleted
	}
	f.seen[key] = true
	f.mu.Unlock()

	return fn(ctx)
}

type fakeUID struct {
	counter atomic.Int64
}

func (f *fakeUID) Generate() int64 {
	return f.counter.Add(1)
}

type fakeClock struct{}

func (fakeClock) Now() time.Time { return testNow }

type fixture struct {
	uc      *Usecase
	db      *fakeDB
	mq      *fakeMQ
	mail    *fakeMail
	reader  *fakeReader
	storage *fakeStorage
	gm      *goroutine.Manager
}

func newFixture(t *testing.T, bucket string) *fixture {
	t.Helper()

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	yaml := "storage:\n  bucket: " + bucket + "\n"
	if bucket == "" {
		yaml = "storage:\n  bucket: \"\"\n"
	}
	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	f := &fixture{
		db:      &fakeDB{},
		mq:      &fakeMQ{},
		mail:    &fakeMail{},
		reader:  &fakeReader{},
		storage: &fakeStorage{},
		gm:      goroutine.NewManager(8),
	}

	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoMessaging: f.mq,
		Mail:          f.mail,
		Reader:        f.reader,
		Storage:       f.storage,
		Idempotency:   &fakeIdemp{},
		Validator:     v10,
		Config:        cfg,
		UID:           &fakeUID{},
		Clock:         fakeClock{},
		Goroutine:     f.gm,
		Instrument:    instrument.NewNoop(),
	})

	return f
}
