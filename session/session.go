// Package session holds the state of one user working on one ledger: the
// purchases being edited, the last calculation and the exports made from it.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/etnz/stockavg"
	"github.com/etnz/stockavg/export"
	"github.com/etnz/stockavg/notify"
	"go.uber.org/zap"
)

// ErrNoResults is returned by exports requested before any calculation.
var ErrNoResults = errors.New("no results")

// Options configures a Session. Zero values get sensible defaults.
type Options struct {
	Title     string // report title, stockavg.DefaultReportTitle if empty
	OutputDir string // where downloads are saved, "." if empty
	Exporter  *export.Exporter
	Notifier  *notify.Notifier
	Log       *zap.Logger
	Now       func() time.Time
}

// Session is the state of a single user. It is not safe for concurrent use.
type Session struct {
	ledger *stockavg.Ledger
	email  string

	// last successful calculation and the snapshot it was computed from.
	// It is kept, possibly stale, until the next successful calculation.
	result   *stockavg.Result
	computed stockavg.Snapshot

	opts Options
	log  *zap.Logger
}

// New returns a session editing l.
func New(l *stockavg.Ledger, opts Options) *Session {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Exporter == nil {
		opts.Exporter = export.New(opts.Log)
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.New("", nil, opts.Log)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{ledger: l, opts: opts, log: opts.Log}
}

// Ledger returns the ledger being edited.
func (s *Session) Ledger() *stockavg.Ledger { return s.ledger }

// Email returns the last address a report was sent to.
func (s *Session) Email() string { return s.email }

// RemoveEntry removes a purchase. It returns a notice only on failure.
func (s *Session) RemoveEntry(id string) (Notice, bool) {
	if err := s.ledger.RemoveEntry(id); err != nil {
		s.log.Debug("remove refused", zap.String("id", id), zap.Error(err))
		return NoticeFor(Removing, err), false
	}
	return Notice{}, true
}

// Calculate computes the average of the current ledger. On failure the
// previous result, if any, is kept.
func (s *Session) Calculate() (*stockavg.Result, Notice) {
	snap := s.ledger.Snapshot()
	r, err := stockavg.Calculate(snap)
	if err != nil {
		s.log.Debug("calculation refused", zap.String("kind", string(stockavg.KindOf(err))), zap.Error(err))
		return nil, NoticeFor(Calculating, err)
	}
	s.result, s.computed = r, snap
	s.log.Info("calculated",
		zap.String("label", snap.Label),
		zap.Int("purchases", len(snap.Entries)),
		zap.Stringer("average", r.AveragePrice),
	)
	return r, Notice{
		Title:       "Calculated",
		Description: fmt.Sprintf("Average price is %s over %s shares.", r.AveragePrice, r.TotalShares),
	}
}

// Result returns the last result, if any.
func (s *Session) Result() (*stockavg.Result, bool) { return s.result, s.result != nil }

// Stale reports whether the ledger changed since the last result was computed.
func (s *Session) Stale() bool {
	return s.result != nil && !sameSnapshot(s.computed, s.ledger.Snapshot())
}

// Report returns the report of the last result. It describes the purchases
// the result was computed from, even if the ledger changed since.
func (s *Session) Report() (*stockavg.Report, error) {
	if s.result == nil {
		return nil, ErrNoResults
	}
	return stockavg.NewReport(s.opts.Title, s.computed, s.result, s.opts.Now()), nil
}

// Charts returns the chart series of the last result.
func (s *Session) Charts() (*stockavg.Charts, error) {
	if s.result == nil {
		return nil, ErrNoResults
	}
	return stockavg.NewCharts(s.computed, s.result), nil
}

// Download saves the report of the last result in format f and returns the
// file path.
func (s *Session) Download(f export.Format) (string, Notice) {
	rep, err := s.Report()
	if err != nil {
		return "", noResults(Downloading)
	}
	path, err := s.opts.Exporter.Save(s.opts.OutputDir, rep, f)
	if err != nil {
		return "", NoticeFor(Downloading, err)
	}
	return path, Notice{Title: "Download Started", Description: fmt.Sprintf("Your report is being saved to %s.", path)}
}

// SendEmail sends the report of the last result to the address to.
func (s *Session) SendEmail(ctx context.Context, to string) Notice {
	rep, err := s.Report()
	if err != nil {
		return noResults(Emailing)
	}
	s.email = to
	if _, err := s.opts.Notifier.Notify(ctx, to, rep); err != nil {
		return NoticeFor(Emailing, err)
	}
	return Notice{Title: "Email Sent", Description: fmt.Sprintf("Results have been sent to %s.", to)}
}

func sameSnapshot(a, b stockavg.Snapshot) bool {
	if a.Label != b.Label || a.Currency != b.Currency || len(a.Entries) != len(b.Entries) {
		return false
	}
	for i := range a.Entries {
		x, y := a.Entries[i], b.Entries[i]
		if x.ID != y.ID || !x.Quantity.Equal(y.Quantity) || !x.Price.Equal(y.Price) {
			return false
		}
	}
	return true
}
