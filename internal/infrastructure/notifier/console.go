package notifier

import (
	"context"
	"fmt"
	"io"
	"sync"

	"tg_giftwatch/internal/domain/service/notify"
)

// Console печатает отчёт как есть, отделяя его пустой строкой.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Name() string {
	return "console"
}

func (c *Console) Send(_ context.Context, report notify.Report) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.w, "\n%s\n", report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
