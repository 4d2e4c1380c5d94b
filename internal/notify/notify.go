/*
Package notify delivers alert messages to the console, Telegram and email.
*/
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Sender delivers one message. Implementations do not retry.
type Sender interface {
	Send(ctx context.Context, message string) error
}

// Multi sends every message to each sender in turn. A failing sender does
// not stop the others.
type Multi []Sender

func (m Multi) Send(ctx context.Context, message string) error {
	var errs []error
	for _, s := range m {
		if err := s.Send(ctx, message); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Console prints messages, one per line.
type Console struct {
	W io.Writer
}

func (c Console) Send(_ context.Context, message string) error {
	w := c.W
	if w == nil {
		w = os.Stdout
	}
	_, err := fmt.Fprintln(w, message)
	return err
}
