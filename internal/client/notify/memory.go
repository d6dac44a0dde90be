package notify

import "sync"

// Message представляет одно записанное уведомление
type Message struct {
	Level  string
	Title  string
	Detail string
}

// Memory представляет notifier, накапливающий уведомления в памяти.
// Используется в тестах для проверки пользовательской обратной связи.
type Memory struct {
	mu       sync.Mutex
	messages []Message
}

func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Info(title, detail string)    { m.record("info", title, detail) }
func (m *Memory) Success(title, detail string) { m.record("success", title, detail) }
func (m *Memory) Warn(title, detail string)    { m.record("warn", title, detail) }
func (m *Memory) Error(title, detail string)   { m.record("error", title, detail) }

func (m *Memory) record(level, title, detail string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, Message{Level: level, Title: title, Detail: detail})
}

// Messages возвращает копию записанных уведомлений
func (m *Memory) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// ByLevel возвращает уведомления указанного уровня
func (m *Memory) ByLevel(level string) []Message {
	var out []Message
	for _, msg := range m.Messages() {
		if msg.Level == level {
			out = append(out, msg)
		}
	}
	return out
}
