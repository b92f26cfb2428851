package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/etnz/stockavg"
	"github.com/etnz/stockavg/renderer"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Error is a failed export. It matches stockavg.ErrExportFailure.
type Error struct {
	Format Format
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s document: %v", stockavg.ErrExportFailure, e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == stockavg.ErrExportFailure }

// Exporter renders reports into documents.
type Exporter struct {
	log *zap.Logger
}

// New returns an Exporter logging to log, which may be nil.
func New(log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{log: log}
}

// Write renders r in format f to w. Nothing is written to w if rendering fails.
func (e *Exporter) Write(w io.Writer, r *stockavg.Report, f Format) error {
	var buf bytes.Buffer
	if err := e.render(&buf, r, f); err != nil {
		e.log.Warn("export failed", zap.Stringer("format", f), zap.Error(err))
		return &Error{Format: f, Err: err}
	}
	n, err := buf.WriteTo(w)
	if err != nil {
		e.log.Warn("export failed", zap.Stringer("format", f), zap.Error(err))
		return &Error{Format: f, Err: errors.Wrap(err, "write document")}
	}
	e.log.Info("report exported", zap.Stringer("format", f), zap.String("label", r.Label), zap.Int64("bytes", n))
	return nil
}

// Save writes r in format f into dir, under FileName, and returns the file path.
func (e *Exporter) Save(dir string, r *stockavg.Report, f Format) (string, error) {
	path := filepath.Join(dir, FileName(r.Label, f))
	file, err := os.Create(path)
	if err != nil {
		return "", &Error{Format: f, Err: errors.Wrap(err, "create document")}
	}
	if err := e.Write(file, r, f); err != nil {
		file.Close()
		os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", &Error{Format: f, Err: errors.Wrap(err, "close document")}
	}
	return path, nil
}

func (e *Exporter) render(w io.Writer, r *stockavg.Report, f Format) error {
	switch f {
	case Markdown:
		_, err := io.WriteString(w, renderer.Markdown(r))
		return errors.Wrap(err, "write markdown")
	case HTML:
		page, err := renderer.HTML(r.Heading(), renderer.Markdown(r))
		if err != nil {
			return errors.Wrap(err, "render html")
		}
		_, err = w.Write(page)
		return errors.Wrap(err, "write html")
	case XLSX:
		return writeXLSX(w, r)
	default:
		return errors.Errorf("unsupported format %q", string(f))
	}
}
