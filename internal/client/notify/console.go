package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// ANSI-коды для цветного вывода
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorCyan   = "\033[36m"
)

// Console представляет notifier, пишущий уведомления в терминал.
// Цвет включается только когда вывод идет в настоящий терминал.
type Console struct {
	out      io.Writer
	mu       sync.Mutex
	useColor bool
}

// NewConsole создает console notifier поверх stderr
func NewConsole() *Console {
	return &Console{
		out:      os.Stderr,
		useColor: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// NewConsoleWriter создает console notifier поверх произвольного writer
// (без цвета; используется в тестах)
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

func (c *Console) Info(title, detail string)    { c.print(colorCyan, title, detail) }
func (c *Console) Success(title, detail string) { c.print(colorGreen, title, detail) }
func (c *Console) Warn(title, detail string)    { c.print(colorYellow, title, detail) }
func (c *Console) Error(title, detail string)   { c.print(colorRed, title, detail) }

func (c *Console) print(color, title, detail string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.useColor {
		fmt.Fprintf(c.out, "%s%s%s", color, title, colorReset)
	} else {
		fmt.Fprint(c.out, title)
	}
	if detail != "" {
		fmt.Fprintf(c.out, ": %s", detail)
	}
	fmt.Fprintln(c.out)
}
