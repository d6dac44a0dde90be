package sync

import "time"

// Умолчания политики повторов. Подобраны под терминал с нестабильной
// мобильной сетью: первая пауза короткая, дальше окно растёт до получаса.
const (
	defaultBaseDelay   = 30 * time.Second
	defaultMaxDelay    = 30 * time.Minute
	defaultMaxAttempts = 8
)

// RetryPolicy задаёт экспоненциальный backoff для неудавшихся событий.
// После MaxAttempts неудач событие переводится в терминальный статус
// abandoned и больше не отправляется.
type RetryPolicy struct {
	// BaseDelay - пауза после первой неудачи
	BaseDelay time.Duration
	// MaxDelay - потолок паузы между попытками
	MaxDelay time.Duration
	// MaxAttempts - лимит попыток отправки
	MaxAttempts int
}

func (p RetryPolicy) withDefaults() RetryPolicy {
	if p.BaseDelay <= 0 {
		p.BaseDelay = defaultBaseDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = defaultMaxDelay
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	return p
}

// NextDelay возвращает паузу перед попыткой под номером attempts+1.
// attempts - число уже совершённых неудачных попыток, минимум 1.
func (p RetryPolicy) NextDelay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}

	delay := p.BaseDelay
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= p.MaxDelay {
			return p.MaxDelay
		}
	}

	if delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}

// Exhausted возвращает true, если лимит попыток исчерпан
func (p RetryPolicy) Exhausted(attempts int) bool {
	return attempts >= p.MaxAttempts
}
