package cli

import (
	"context"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
)

// RunUpload ставит файл в очередь загрузки. Файл целиком читается
// в локальное хранилище и уходит на сервер после владеющего события.
func (c *Cli) RunUpload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	path := fs.String("file", "", "Path to the file to upload")
	contentType := fs.String("type", "", "Content type (detected from extension if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return fmt.Errorf("file path is required")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	name := filepath.Base(*path)
	ct := *contentType
	if ct == "" {
		ct = mime.TypeByExtension(filepath.Ext(name))
	}
	if ct == "" {
		ct = "application/octet-stream"
	}

	result, err := c.recorder.UploadFile(ctx, name, ct, data)
	if err != nil {
		return fmt.Errorf("failed to queue file: %w", err)
	}

	c.printf("File %s queued (%d bytes, %s)\n", name, len(data), ct)
	c.printEventOutcome(result)
	return nil
}
