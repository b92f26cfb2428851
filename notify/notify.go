// Package notify sends calculation reports to an email address.
//
// Delivery is simulated: LogSender only logs the message it would send.
package notify

import (
	"context"
	"fmt"

	"github.com/etnz/stockavg"
	"github.com/etnz/stockavg/renderer"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Message is an email ready to be sent.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string // markdown
}

// NewMessage returns the message carrying report r.
func NewMessage(from, to string, r *stockavg.Report) Message {
	return Message{
		From:    from,
		To:      to,
		Subject: r.Heading(),
		Body:    renderer.Markdown(r),
	}
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// LogSender pretends to deliver messages by logging them.
type LogSender struct {
	Log *zap.Logger
}

// Send logs m. It succeeds unless ctx is done.
func (s LogSender) Send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("email sent (simulated)",
		zap.String("from", m.From),
		zap.String("to", m.To),
		zap.String("subject", m.Subject),
		zap.Int("bytes", len(m.Body)),
	)
	return nil
}

// Notifier sends reports on behalf of From.
type Notifier struct {
	From   string
	Sender Sender
	log    *zap.Logger
}

// New returns a Notifier. A nil sender is replaced by a LogSender.
func New(from string, sender Sender, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	if sender == nil {
		sender = LogSender{Log: log}
	}
	return &Notifier{From: from, Sender: sender, log: log}
}

// Notify sends r to the address to and reports whether it was sent.
//
// An invalid address fails with stockavg.ErrInvalidEmailFormat before the
// sender is involved. Any other failure matches stockavg.ErrExportFailure.
func (n *Notifier) Notify(ctx context.Context, to string, r *stockavg.Report) (bool, error) {
	if err := ValidateAddress(to); err != nil {
		n.log.Debug("invalid recipient", zap.String("to", to))
		return false, err
	}
	if r == nil {
		return false, fmt.Errorf("%w: no report to send", stockavg.ErrExportFailure)
	}
	if err := n.Sender.Send(ctx, NewMessage(n.From, to, r)); err != nil {
		n.log.Warn("email failed", zap.String("to", to), zap.Error(err))
		return false, errors.Wrapf(fmt.Errorf("%w: %w", stockavg.ErrExportFailure, err), "could not send report to %s", to)
	}
	return true, nil
}
