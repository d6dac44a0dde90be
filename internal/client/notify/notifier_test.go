package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole_WritesMessages(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsoleWriter(&buf)

	console.Success("Synchronisation réussie", "12 éléments synchronisés")
	console.Warn("3 éléments non synchronisés", "")

	out := buf.String()
	assert.Contains(t, out, "Synchronisation réussie: 12 éléments synchronisés")
	assert.Contains(t, out, "3 éléments non synchronisés")
	// Без терминала цветовые коды не добавляются
	assert.NotContains(t, out, "\033[")
}

func TestMemory_RecordsByLevel(t *testing.T) {
	mem := NewMemory()

	mem.Info("mode hors-ligne", "")
	mem.Success("ok", "detail")
	mem.Error("échec", "raison")

	assert.Len(t, mem.Messages(), 3)
	assert.Len(t, mem.ByLevel("success"), 1)
	assert.Equal(t, "raison", mem.ByLevel("error")[0].Detail)
	assert.Empty(t, mem.ByLevel("warn"))
}
