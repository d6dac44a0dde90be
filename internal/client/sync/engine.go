// Package sync реализует движок синхронизации офлайн-очереди.
//
// Движок выгружает накопленные события батчами, ведёт backoff для
// неудавшихся отправок и загружает файловые вложения после подтверждения
// владеющих событий. Одновременно выполняется не более одного прохода:
// повторный Trigger во время прохода возвращает handle уже идущего.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	clientapi "github.com/224solutions/offline-sync/internal/client/api"
	"github.com/224solutions/offline-sync/internal/client/notify"
	"github.com/224solutions/offline-sync/internal/client/storage"
	"github.com/224solutions/offline-sync/internal/models"
	"github.com/224solutions/offline-sync/pkg/api"
)

// ErrOffline возвращается, когда проход запрошен без связи с сервером
var ErrOffline = errors.New("server is unreachable")

const (
	defaultInterval    = 30 * time.Second
	defaultBatchSize   = 10
	defaultRecordDelay = time.Second
	defaultRetention   = 24 * time.Hour
)

// Config задаёт параметры движка. Нулевые поля заменяются умолчаниями.
type Config struct {
	// Interval - период фоновых проходов
	Interval time.Duration
	// BatchSize - максимум событий в одном запросе
	BatchSize int
	// RecordDelay - пауза между записью события и внеочередным проходом
	RecordDelay time.Duration
	// Retention - сколько хранить synced события до очистки
	Retention time.Duration
	// Retry - политика повторов для неудавшихся событий
	Retry RetryPolicy
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.RecordDelay <= 0 {
		c.RecordDelay = defaultRecordDelay
	}
	if c.Retention <= 0 {
		c.Retention = defaultRetention
	}
	c.Retry = c.Retry.withDefaults()
	return c
}

// RunResult содержит итоги одного прохода синхронизации
type RunResult struct {
	Synced        int // событий принято сервером
	Failed        int // событий ушло в backoff
	Abandoned     int // событий исчерпало лимит попыток
	Batches       int // отправлено батчей
	FilesUploaded int // файлов загружено
	FilesDropped  int // файлов удалено без загрузки
	Cleaned       int // synced событий вычищено по retention
}

// Run представляет handle одного прохода синхронизации.
// Все вызыватели, заставшие проход в полёте, получают один и тот же handle
// и видят один и тот же результат.
type Run struct {
	done   chan struct{}
	result *RunResult
	err    error
}

// Done закрывается по завершении прохода
func (r *Run) Done() <-chan struct{} { return r.done }

// Wait блокируется до завершения прохода или отмены ctx
func (r *Run) Wait(ctx context.Context) (*RunResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-r.done:
		return r.result, r.err
	}
}

// Engine представляет движок синхронизации
type Engine struct {
	events   storage.EventStorage
	files    storage.FileStorage
	metadata storage.MetadataStorage
	client   clientapi.ClientAPI
	notifier notify.Notifier
	logger   *slog.Logger

	online func() bool
	cfg    Config
	now    func() time.Time

	mu      stdsync.Mutex
	current *Run

	startMu stdsync.Mutex
	baseCtx context.Context
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewEngine создает движок синхронизации
func NewEngine(
	events storage.EventStorage,
	files storage.FileStorage,
	metadata storage.MetadataStorage,
	client clientapi.ClientAPI,
	notifier notify.Notifier,
	logger *slog.Logger,
	online func() bool,
	cfg Config,
) *Engine {
	if notifier == nil {
		notifier = notify.NewNop()
	}
	if online == nil {
		online = func() bool { return false }
	}
	return &Engine{
		events:   events,
		files:    files,
		metadata: metadata,
		client:   client,
		notifier: notifier,
		logger:   logger,
		online:   online,
		cfg:      cfg.withDefaults(),
		now:      time.Now,
		baseCtx:  context.Background(),
	}
}

// Trigger запускает проход синхронизации. Если проход уже идёт,
// возвращается его handle и новый проход не начинается.
func (e *Engine) Trigger(ctx context.Context) *Run {
	e.mu.Lock()
	if e.current != nil {
		run := e.current
		e.mu.Unlock()
		return run
	}

	run := &Run{done: make(chan struct{})}
	e.current = run
	e.mu.Unlock()

	go func() {
		run.result, run.err = e.runPass(ctx)

		e.mu.Lock()
		e.current = nil
		e.mu.Unlock()

		close(run.done)
	}()

	return run
}

// RequestSync планирует внеочередной проход после короткой паузы.
// Вызывается рекордером сразу после записи нового события; пауза даёт
// нескольким подряд записям уйти одним батчем.
func (e *Engine) RequestSync() {
	e.startMu.Lock()
	ctx := e.baseCtx
	e.startMu.Unlock()

	time.AfterFunc(e.cfg.RecordDelay, func() {
		if ctx.Err() != nil {
			return
		}
		e.Trigger(ctx)
	})
}

// Start запускает фоновый цикл проходов. Повторный вызов без Stop
// игнорируется.
func (e *Engine) Start(ctx context.Context) {
	e.startMu.Lock()
	defer e.startMu.Unlock()

	if e.done != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	e.baseCtx = runCtx
	e.cancel = cancel
	e.done = make(chan struct{})

	go e.loop(runCtx)
}

// Stop останавливает фоновый цикл и отменяет контекст идущего прохода.
func (e *Engine) Stop() {
	e.startMu.Lock()
	defer e.startMu.Unlock()

	if e.done == nil {
		return
	}

	e.cancel()
	<-e.done
	e.cancel = nil
	e.done = nil
	e.baseCtx = context.Background()
}

func (e *Engine) loop(ctx context.Context) {
	defer close(e.done)

	ticker := time.NewTicker(e.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !e.online() {
				continue
			}
			e.Trigger(ctx)
		}
	}
}

// runPass выполняет один полный проход: события батчами, затем файлы,
// затем отметка времени и очистка.
func (e *Engine) runPass(ctx context.Context) (*RunResult, error) {
	if !e.online() {
		return nil, ErrOffline
	}

	session, err := e.metadata.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	now := e.now()
	due, err := e.events.GetDueEvents(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due events: %w", err)
	}

	e.logger.Info("sync pass started",
		slog.Int("due_events", len(due)))

	result := &RunResult{}

	for start := 0; start < len(due); start += e.cfg.BatchSize {
		end := start + e.cfg.BatchSize
		if end > len(due) {
			end = len(due)
		}
		batch := due[start:end]
		result.Batches++

		if err := e.sendBatch(ctx, session.AccessToken, batch, result); err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				// Остановка движка прервала отправку. Это не отказ
				// доставки: события остаются pending без списания
				// попытки и уйдут на следующем проходе.
				e.logger.Info("sync pass interrupted",
					slog.Int("batch", result.Batches))
				break
			}
			// Транспортная ошибка: связь скорее всего пропала,
			// остальные батчи не отправляем.
			e.logger.Warn("batch transport error, stopping pass",
				slog.Int("batch", result.Batches),
				slog.String("error", err.Error()))
			e.markBatchFailed(ctx, batch, err.Error(), result)
			break
		}
	}

	e.syncFiles(ctx, session.AccessToken, result)

	if err := e.metadata.SaveLastSyncTime(ctx, now); err != nil {
		e.logger.Warn("failed to save last sync time",
			slog.String("error", err.Error()))
	}

	cleaned, err := e.events.CleanupSyncedEvents(ctx, now.Add(-e.cfg.Retention))
	if err != nil {
		e.logger.Warn("failed to cleanup synced events",
			slog.String("error", err.Error()))
	}
	result.Cleaned = cleaned

	e.logger.Info("sync pass finished",
		slog.Int("synced", result.Synced),
		slog.Int("failed", result.Failed),
		slog.Int("abandoned", result.Abandoned),
		slog.Int("files_uploaded", result.FilesUploaded),
		slog.Int("cleaned", result.Cleaned))

	if result.Synced > 0 {
		e.notifier.Success("Synchronisation réussie",
			fmt.Sprintf("%d événement(s) synchronisé(s)", result.Synced))
	}
	if result.Abandoned > 0 {
		e.notifier.Error("Événements abandonnés",
			fmt.Sprintf("%d événement(s) non livrables après %d tentatives",
				result.Abandoned, e.cfg.Retry.MaxAttempts))
	}

	return result, nil
}

// sendBatch отправляет один батч. Возвращает ошибку только при проблемах
// транспорта; отказ уровня приложения обрабатывается на месте.
func (e *Engine) sendBatch(ctx context.Context, accessToken string, batch []*models.OfflineEvent, result *RunResult) error {
	req := api.BatchSyncRequest{
		Events: make([]api.Event, 0, len(batch)),
	}
	for _, event := range batch {
		req.Events = append(req.Events, api.Event{
			CreatedAt:     event.CreatedAt,
			ClientEventID: event.ClientEventID,
			Type:          event.Type,
			VendorID:      event.VendorID,
			Payload:       event.Payload,
		})
	}

	resp, err := e.client.SyncBatch(ctx, accessToken, req)
	if err != nil {
		return err
	}

	if !resp.Success {
		reason := resp.Error
		if reason == "" {
			reason = "batch rejected by server"
		}
		e.logger.Warn("batch rejected",
			slog.Int("events", len(batch)),
			slog.String("reason", reason))
		e.markBatchFailed(ctx, batch, reason, result)
		return nil
	}

	for _, event := range batch {
		if err := e.events.MarkEventSynced(ctx, event.ClientEventID); err != nil {
			e.logger.Warn("failed to mark event synced",
				slog.String("client_event_id", event.ClientEventID),
				slog.String("error", err.Error()))
			continue
		}
		result.Synced++
	}

	return nil
}

// markBatchFailed переводит события батча в failed с окном backoff
// либо в abandoned, если лимит попыток исчерпан.
func (e *Engine) markBatchFailed(ctx context.Context, batch []*models.OfflineEvent, reason string, result *RunResult) {
	for _, event := range batch {
		attempts := event.Attempts + 1

		if e.cfg.Retry.Exhausted(attempts) {
			if err := e.events.MarkEventAbandoned(ctx, event.ClientEventID, reason); err != nil {
				e.logger.Warn("failed to mark event abandoned",
					slog.String("client_event_id", event.ClientEventID),
					slog.String("error", err.Error()))
				continue
			}
			e.logger.Warn("event abandoned after retry budget",
				slog.String("client_event_id", event.ClientEventID),
				slog.Int("attempts", attempts))
			result.Abandoned++
			continue
		}

		nextAttempt := e.now().Add(e.cfg.Retry.NextDelay(attempts))
		if err := e.events.MarkEventFailed(ctx, event.ClientEventID, reason, nextAttempt); err != nil {
			e.logger.Warn("failed to mark event failed",
				slog.String("client_event_id", event.ClientEventID),
				slog.String("error", err.Error()))
			continue
		}
		result.Failed++
	}
}

// syncFiles загружает вложения, чьи события уже приняты сервером.
// Файлы abandoned событий удаляются: серверу они не нужны.
func (e *Engine) syncFiles(ctx context.Context, accessToken string, result *RunResult) {
	files, err := e.files.ListFiles(ctx)
	if err != nil {
		e.logger.Warn("failed to list files", slog.String("error", err.Error()))
		return
	}

	for _, file := range files {
		event, err := e.events.GetEvent(ctx, file.EventID)
		switch {
		case errors.Is(err, storage.ErrEventNotFound):
			// Владеющее событие вычищено retention после synced:
			// файл всё ещё подлежит загрузке.
			e.uploadFile(ctx, accessToken, file, result)
		case err != nil:
			e.logger.Warn("failed to get owning event",
				slog.String("file_id", file.ID),
				slog.String("error", err.Error()))
		case event.Status == models.StatusSynced:
			e.uploadFile(ctx, accessToken, file, result)
		case event.Status == models.StatusAbandoned:
			e.dropFile(ctx, file, result)
		default:
			// Событие ещё в очереди: файл ждёт подтверждения.
		}
	}
}

func (e *Engine) uploadFile(ctx context.Context, accessToken string, file *models.OfflineFile, result *RunResult) {
	resp, err := e.client.UploadFile(ctx, accessToken, file)
	if err != nil {
		e.logger.Warn("file upload failed",
			slog.String("file_id", file.ID),
			slog.String("error", err.Error()))
		return
	}
	if !resp.Success {
		e.logger.Warn("file upload rejected",
			slog.String("file_id", file.ID),
			slog.String("error", resp.Error))
		return
	}

	if err := e.files.DeleteFile(ctx, file.ID); err != nil {
		e.logger.Warn("failed to delete uploaded file",
			slog.String("file_id", file.ID),
			slog.String("error", err.Error()))
		return
	}
	result.FilesUploaded++
}

func (e *Engine) dropFile(ctx context.Context, file *models.OfflineFile, result *RunResult) {
	if err := e.files.DeleteFile(ctx, file.ID); err != nil {
		e.logger.Warn("failed to drop file of abandoned event",
			slog.String("file_id", file.ID),
			slog.String("error", err.Error()))
		return
	}
	e.logger.Warn("dropped file of abandoned event",
		slog.String("file_id", file.ID),
		slog.String("name", file.Name))
	e.notifier.Warn("Fichier abandonné", file.Name)
	result.FilesDropped++
}
