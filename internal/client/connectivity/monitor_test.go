package connectivity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// errBox оборачивает error, чтобы atomic.Value могла хранить nil.
type errBox struct{ err error }

func TestMonitor_CheckOnline(t *testing.T) {
	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error {
			return nil
		},
	}
	m := NewMonitor(prober, testLogger(), Config{})

	assert.False(t, m.Online())
	assert.True(t, m.Check(context.Background()))
	assert.True(t, m.Online())
	assert.Len(t, prober.HealthCalls(), 1)
}

func TestMonitor_CheckOffline(t *testing.T) {
	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	}
	m := NewMonitor(prober, testLogger(), Config{})

	assert.False(t, m.Check(context.Background()))
	assert.False(t, m.Online())
}

func TestMonitor_SubscribeOfflineImmediate(t *testing.T) {
	var healthErr atomic.Value

	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error {
			if err := healthErr.Load(); err != nil {
				return err.(error)
			}
			return nil
		},
	}
	m := NewMonitor(prober, testLogger(), Config{Stabilization: time.Millisecond})

	var mu sync.Mutex
	var transitions []bool
	m.Subscribe(func(online bool) {
		mu.Lock()
		transitions = append(transitions, online)
		mu.Unlock()
	})

	m.Check(context.Background())
	healthErr.Store(errors.New("network is unreachable"))
	m.Check(context.Background())

	// Потеря связи сообщается без задержки.
	mu.Lock()
	got := append([]bool(nil), transitions...)
	mu.Unlock()
	require.NotEmpty(t, got)
	assert.False(t, got[len(got)-1])
}

func TestMonitor_ReconnectStabilization(t *testing.T) {
	var healthErr atomic.Value
	healthErr.Store(errBox{errors.New("offline")})

	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error {
			if err := healthErr.Load().(errBox).err; err != nil {
				return err
			}
			return nil
		},
	}
	m := NewMonitor(prober, testLogger(), Config{Stabilization: 20 * time.Millisecond})

	notified := make(chan bool, 4)
	m.Subscribe(func(online bool) {
		notified <- online
	})

	m.Check(context.Background())

	healthErr.Store(errBox{})
	m.Check(context.Background())

	// До истечения задержки стабилизации оповещения нет.
	select {
	case v := <-notified:
		t.Fatalf("notified too early: %v", v)
	case <-time.After(5 * time.Millisecond):
	}

	select {
	case v := <-notified:
		assert.True(t, v)
	case <-time.After(time.Second):
		t.Fatal("reconnect notification never arrived")
	}
}

func TestMonitor_ReconnectCancelledByFlap(t *testing.T) {
	var healthErr atomic.Value
	healthErr.Store(errBox{errors.New("offline")})

	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error {
			if err := healthErr.Load().(errBox).err; err != nil {
				return err
			}
			return nil
		},
	}
	m := NewMonitor(prober, testLogger(), Config{Stabilization: 30 * time.Millisecond})

	var onlineNotices atomic.Int32
	m.Subscribe(func(online bool) {
		if online {
			onlineNotices.Add(1)
		}
	})

	m.Check(context.Background())

	// Связь появилась и тут же пропала: переход online не сообщается.
	healthErr.Store(errBox{})
	m.Check(context.Background())
	healthErr.Store(errBox{errors.New("offline again")})
	m.Check(context.Background())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), onlineNotices.Load())
}

func TestMonitor_FlapNotifiesOnlineOnce(t *testing.T) {
	var healthErr atomic.Value
	healthErr.Store(errBox{errors.New("offline")})

	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error {
			if err := healthErr.Load().(errBox).err; err != nil {
				return err
			}
			return nil
		},
	}
	m := NewMonitor(prober, testLogger(), Config{Stabilization: 30 * time.Millisecond})

	var onlineNotices atomic.Int32
	m.Subscribe(func(online bool) {
		if online {
			onlineNotices.Add(1)
		}
	})

	m.Check(context.Background())

	// Два перехода в online внутри окна стабилизации запускают два
	// таймера. Сработать должен только последний: одно восстановление
	// связи - одно оповещение.
	healthErr.Store(errBox{})
	m.Check(context.Background())
	healthErr.Store(errBox{errors.New("blip")})
	m.Check(context.Background())
	healthErr.Store(errBox{})
	m.Check(context.Background())

	require.Eventually(t, func() bool {
		return onlineNotices.Load() >= 1
	}, time.Second, time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), onlineNotices.Load())
}

func TestMonitor_StartStop(t *testing.T) {
	var calls atomic.Int32
	prober := &ProberMock{
		HealthFunc: func(ctx context.Context) error {
			calls.Add(1)
			return nil
		},
	}
	m := NewMonitor(prober, testLogger(), Config{
		Interval:      5 * time.Millisecond,
		Stabilization: time.Millisecond,
	})

	m.Start(context.Background())
	m.Start(context.Background()) // повторный запуск игнорируется

	require.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, time.Second, time.Millisecond)
	assert.True(t, m.Online())

	m.Stop()
	m.Stop() // повторная остановка безопасна

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}
