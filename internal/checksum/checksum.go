package checksum

import (
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Sum вычисляет BLAKE2b-256 контрольную сумму данных
// Используется на клиенте при сохранении файла и на сервере при приёме,
// чтобы обнаружить повреждение вложения между записью и загрузкой
func Sum(data []byte) string {
	hash := blake2b.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// SumReader вычисляет контрольную сумму потока
func SumReader(r io.Reader) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("failed to create hasher: %w", err)
	}

	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to hash stream: %w", err)
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// Verify проверяет, соответствуют ли данные ожидаемой контрольной сумме
func Verify(data []byte, expected string) error {
	if expected == "" {
		return fmt.Errorf("expected checksum cannot be empty")
	}

	computed := Sum(data)
	if computed != expected {
		return fmt.Errorf("checksum mismatch: expected %s, got %s", expected, computed)
	}

	return nil
}
