package notify

// Notifier определяет интерфейс пользовательских уведомлений терминала.
// Веб-версия показывает toast-сообщения; CLI пишет в консоль.
type Notifier interface {
	Info(title, detail string)
	Success(title, detail string)
	Warn(title, detail string)
	Error(title, detail string)
}

// Nop представляет notifier, отбрасывающий все уведомления
// Используется в тестах и в режимах без интерактивного вывода
type Nop struct{}

func NewNop() *Nop { return &Nop{} }

func (n *Nop) Info(title, detail string)    {}
func (n *Nop) Success(title, detail string) {}
func (n *Nop) Warn(title, detail string)    {}
func (n *Nop) Error(title, detail string)   {}
