// Package connectivity отслеживает доступность сервера синхронизации.
//
// Монитор периодически опрашивает health-endpoint и хранит последнее
// известное состояние. Подписчики получают уведомления о смене состояния;
// переход offline -> online сообщается с задержкой стабилизации, чтобы не
// запускать синхронизацию на мигающем соединении.
package connectivity

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

//go:generate moq -out prober_mock.go . Prober

// Prober проверяет доступность сервера одним лёгким запросом.
type Prober interface {
	Health(ctx context.Context) error
}

const (
	defaultInterval      = 10 * time.Second
	defaultProbeTimeout  = 5 * time.Second
	defaultStabilization = 2 * time.Second
)

// Config задаёт интервалы монитора. Нулевые поля заменяются умолчаниями.
type Config struct {
	// Interval - период между проверками.
	Interval time.Duration
	// ProbeTimeout - таймаут одной проверки.
	ProbeTimeout time.Duration
	// Stabilization - задержка перед оповещением о восстановлении связи.
	Stabilization time.Duration
}

func (c Config) withDefaults() Config {
	if c.Interval <= 0 {
		c.Interval = defaultInterval
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = defaultProbeTimeout
	}
	if c.Stabilization <= 0 {
		c.Stabilization = defaultStabilization
	}
	return c
}

// Monitor хранит текущее состояние подключения и оповещает подписчиков.
type Monitor struct {
	prober Prober
	logger *slog.Logger
	cfg    Config

	mu     sync.Mutex
	online bool
	gen    uint64
	subs   []func(online bool)

	startMu sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewMonitor создает монитор. До первого вызова Check состояние - offline.
func NewMonitor(prober Prober, logger *slog.Logger, cfg Config) *Monitor {
	return &Monitor{
		prober: prober,
		logger: logger,
		cfg:    cfg.withDefaults(),
	}
}

// Online возвращает последнее известное состояние подключения.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// Subscribe регистрирует обработчик смены состояния. Обработчик вызывается
// только при переходах, не при каждой проверке. Потеря связи сообщается
// сразу, восстановление - после задержки стабилизации.
func (m *Monitor) Subscribe(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Check выполняет немедленную проверку и обновляет состояние.
func (m *Monitor) Check(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, m.cfg.ProbeTimeout)
	defer cancel()

	err := m.prober.Health(probeCtx)
	online := err == nil
	m.setOnline(online)

	return online
}

// Start запускает фоновый цикл проверок. Повторный вызов без Stop
// игнорируется.
func (m *Monitor) Start(ctx context.Context) {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	if m.done != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(runCtx)
}

// Stop останавливает фоновый цикл и дожидается его завершения.
func (m *Monitor) Stop() {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	if m.done == nil {
		return
	}

	m.cancel()
	<-m.done
	m.cancel = nil
	m.done = nil
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	m.Check(ctx)

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

func (m *Monitor) setOnline(online bool) {
	m.mu.Lock()
	prev := m.online
	m.online = online
	if prev != online {
		m.gen++
	}
	gen := m.gen
	subs := make([]func(bool), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	if prev == online {
		return
	}

	if !online {
		m.logger.Warn("connection lost")
		for _, fn := range subs {
			fn(false)
		}
		return
	}

	m.logger.Info("connection restored",
		slog.Duration("stabilization", m.cfg.Stabilization))

	// Ждем стабилизации: если за это время связь снова пропала,
	// подписчики не оповещаются. Номер перехода отсекает устаревшие
	// таймеры при быстром мигании offline/online, иначе каждый из них
	// оповестил бы подписчиков повторно.
	time.AfterFunc(m.cfg.Stabilization, func() {
		m.mu.Lock()
		stale := !m.online || m.gen != gen
		m.mu.Unlock()
		if stale {
			return
		}
		for _, fn := range subs {
			fn(true)
		}
	})
}
