package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"aurgen/internal/fileutil"
	"aurgen/internal/history"
	"aurgen/internal/script"
	"aurgen/internal/selector"
	"aurgen/internal/transcript"
)

// ErrNothingToProcess indicates selection found no candidate transcript.
var ErrNothingToProcess = errors.New("no transcripts to process")

const lockFileName = ".aurgen.lock"

// Options describes one generation run.
type Options struct {
	Mode          selector.Mode
	TranscriptDir string
	OutputDir     string

	// InputFile, when set, bypasses selection entirely. OutputFile is only
	// meaningful alongside InputFile.
	InputFile  string
	OutputFile string

	Script script.Options
	Force  bool
}

// Summary reports what a run did.
type Summary struct {
	RunID   string
	Written int
	Skipped int
}

// Runner executes generation runs. The ledger store may be nil; generation
// never depends on it.
type Runner struct {
	opts   Options
	logger *slog.Logger
	store  *history.Store
}

// New constructs a runner. A nil logger discards output.
func New(opts Options, logger *slog.Logger, store *history.Store) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{opts: opts, logger: logger, store: store}
}

// Run processes every selected transcript sequentially. The first error
// aborts the run; a transcript whose output already exists is skipped with a
// log line unless forcing is on.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	jobs, err := r.selectJobs()
	if err != nil {
		return summary, err
	}
	if len(jobs) == 0 {
		return summary, fmt.Errorf("%w in %s", ErrNothingToProcess, r.opts.TranscriptDir)
	}

	if err := os.MkdirAll(r.opts.OutputDir, 0o755); err != nil {
		return summary, fmt.Errorf("create output directory %q: %w", r.opts.OutputDir, err)
	}

	lock := flock.New(filepath.Join(r.opts.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return summary, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return summary, fmt.Errorf("another aurgen run is in progress for %s", r.opts.OutputDir)
	}
	defer func() { _ = lock.Unlock() }()

	summary.RunID = uuid.NewString()
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		wrote, err := r.process(ctx, job, summary.RunID)
		if err != nil {
			return summary, err
		}
		if wrote {
			summary.Written++
		} else {
			summary.Skipped++
		}
	}
	return summary, nil
}

func (r *Runner) selectJobs() ([]selector.Candidate, error) {
	if r.opts.OutputFile != "" && r.opts.InputFile == "" {
		return nil, errors.New("an explicit output path requires an explicit input path")
	}

	if r.opts.InputFile != "" {
		info, err := os.Stat(r.opts.InputFile)
		if err != nil {
			return nil, fmt.Errorf("inspect input %q: %w", r.opts.InputFile, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("input %q is a directory", r.opts.InputFile)
		}
		output := r.opts.OutputFile
		if output == "" {
			output = filepath.Join(r.opts.OutputDir, deriveOutputName(filepath.Base(r.opts.InputFile)))
		}
		return []selector.Candidate{{Input: r.opts.InputFile, Output: output}}, nil
	}

	if _, err := os.Stat(r.opts.TranscriptDir); err != nil {
		return nil, fmt.Errorf("inspect transcript directory %q: %w", r.opts.TranscriptDir, err)
	}
	return selector.Discover(r.opts.TranscriptDir, r.opts.OutputDir, r.opts.Mode, r.opts.Force)
}

func (r *Runner) process(ctx context.Context, job selector.Candidate, runID string) (bool, error) {
	exists, err := fileutil.Exists(job.Output)
	if err != nil {
		return false, fmt.Errorf("inspect output %q: %w", job.Output, err)
	}
	if exists && !r.opts.Force {
		r.logger.Info("output exists, skipping",
			slog.String("source", job.Input),
			slog.String("output", job.Output))
		return false, nil
	}

	data, err := os.ReadFile(job.Input)
	if err != nil {
		return false, fmt.Errorf("read transcript %q: %w", job.Input, err)
	}

	packages := transcript.Packages(string(data))
	text := script.Render(r.opts.Script, packages, script.Provenance{
		Source:      job.Input,
		GeneratedAt: time.Now().UTC(),
		RunID:       runID,
	})

	if err := fileutil.WriteFileMode(job.Output, []byte(text), 0o755); err != nil {
		return false, fmt.Errorf("write script %q: %w", job.Output, err)
	}

	r.logger.Info("wrote install script",
		slog.String("source", job.Input),
		slog.String("output", job.Output),
		slog.Int("packages", len(packages)))

	if r.store != nil {
		err := r.store.Record(ctx, history.Entry{
			RunID:        runID,
			SourcePath:   job.Input,
			OutputPath:   job.Output,
			Helper:       r.opts.Script.Helper,
			PackageCount: len(packages),
		})
		if err != nil {
			r.logger.Warn("ledger record failed", slog.Any("error", err))
		}
	}
	return true, nil
}

// deriveOutputName maps an explicit input filename to its script name,
// falling back to swapping the extension for names outside the recognized
// transcript shapes.
func deriveOutputName(name string) string {
	if out, ok := selector.OutputName(name); ok {
		return out
	}
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		base = name
	}
	return base + ".sh"
}
