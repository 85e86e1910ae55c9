package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/pagehostgo/internal/ctxlog"
	"github.com/vk/pagehostgo/internal/fsutil"
	"github.com/vk/pagehostgo/internal/session"
)

// pageJob is one page to render: where it comes from and where it goes.
// An empty output means the app's output writer.
type pageJob struct {
	input  string
	output string
}

// Run executes the main application logic: gather pages, run a session per
// page, write the rendered documents. A failing page is reported and does
// not stop the others; Run returns an error if any page failed.
func (a *App) Run(parent context.Context) error {
	ctx := a.ctx(parent)
	a.logger.Debug("App.Run method started.")

	jobs, err := a.gatherPages(ctx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		a.logger.Warn("No pages found, nothing to render.")
		return nil
	}

	failed := 0
	for _, job := range jobs {
		if err := a.runPage(ctx, job); err != nil {
			a.logger.Error("Page failed.", "input", job.input, "error", err)
			failed++
		}
	}

	a.logger.Info("Render finished.", "pages", len(jobs), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d pages failed", failed, len(jobs))
	}
	return nil
}

// gatherPages merges the host config's page blocks with the CLI page path.
func (a *App) gatherPages(ctx context.Context) ([]pageJob, error) {
	var jobs []pageJob

	if a.host != nil {
		for _, p := range a.host.Pages {
			jobs = append(jobs, pageJob{input: p.Input, output: p.Output})
		}
	}

	if a.config.PagePath != "" {
		paths, err := fsutil.FindPages(a.config.PagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to find pages: %w", err)
		}
		for _, p := range paths {
			jobs = append(jobs, pageJob{input: p})
		}
	}

	ctxlog.FromContext(ctx).Debug("Pages gathered.", "count", len(jobs))
	return jobs, nil
}

func (a *App) runPage(parent context.Context, job pageJob) error {
	ctx := ctxlog.With(parent, "page", job.input)
	logger := ctxlog.FromContext(ctx)

	f, err := os.Open(job.input)
	if err != nil {
		return fmt.Errorf("failed to open page: %w", err)
	}
	s, err := session.New(ctx, f)
	f.Close()
	if err != nil {
		return err
	}

	if err := s.Run(ctx); err != nil {
		return err
	}

	if lines := s.Capture().Lines(); len(lines) > 0 {
		logger.Info("Console output captured.", "lines", len(lines))
	}
	if errs := s.Capture().Errors(); len(errs) > 0 {
		logger.Warn("Page reported script errors.", "count", len(errs))
	}

	return a.writeOutput(ctx, s, job)
}

func (a *App) writeOutput(ctx context.Context, s *session.Session, job pageJob) error {
	outPath := job.output
	if outPath == "" && a.config.OutputDir != "" {
		outPath = filepath.Join(a.config.OutputDir, filepath.Base(job.input))
	}

	if outPath == "" {
		return s.Render(a.outW)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := s.Render(out); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Rendered page written.", "output", outPath)
	return nil
}
