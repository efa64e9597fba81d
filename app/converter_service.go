package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"prnbook/domain/core"
	"prnbook/domain/measurement"
	"prnbook/internal"
	"prnbook/internal/errors"
	"prnbook/ports"
)

// Outcome is how a conversion run ended
type Outcome string

const (
	OutcomeCompleted     Outcome = "completed"
	OutcomeInvalidSource Outcome = "invalid_source"
	OutcomeNoInputs      Outcome = "no_inputs"
	OutcomeFailed        Outcome = "failed"
)

// ConverterService runs the folder -> workbooks pipeline
type ConverterService struct {
	storage ports.SourceStorage
	builder *WorkbookBuilder
	logger  *internal.Logger
}

// Report summarizes one conversion run
type Report struct {
	Folder     string         `json:"folder"`
	Outcome    Outcome        `json:"outcome"`
	Diagnostic error          `json:"-"` // Set for invalid source and no inputs
	InputFiles int            `json:"input_files"`
	Ungrouped  []string       `json:"ungrouped,omitempty"`
	Groups     []*GroupResult `json:"groups"`
	RuntimeMs  int64          `json:"runtime_ms"`
}

// Saved lists the workbooks written by the run
func (r *Report) Saved() []string {
	var out []string
	for _, g := range r.Groups {
		if g.Saved {
			out = append(out, g.OutputPath)
		}
	}
	return out
}

// NewConverterService creates a converter service
func NewConverterService(storage ports.SourceStorage, builder *WorkbookBuilder, logger *internal.Logger) *ConverterService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &ConverterService{storage: storage, builder: builder, logger: logger}
}

// Convert builds one workbook per group of input files found in folder.
// A missing folder or a folder without input files is reported through the
// Report with a nil error. Any other failure stops the run at that point and is
// returned together with the groups finished so far.
func (s *ConverterService) Convert(ctx context.Context, folder string) (*Report, error) {
	startTime := time.Now()
	report := &Report{Folder: folder}
	defer func() {
		report.RuntimeMs = time.Since(startTime).Milliseconds()
	}()

	ok, err := s.storage.IsDir(ctx, folder)
	if err != nil {
		report.Outcome = OutcomeFailed
		return report, errors.IOError("failed to check source folder", err)
	}
	if !ok {
		report.Outcome = OutcomeInvalidSource
		report.Diagnostic = core.NewInvalidSourceError(folder, nil)
		s.logger.Warn("source folder is invalid: %q", folder)
		return report, nil
	}

	names, err := s.storage.List(ctx, folder, measurement.InputExtension)
	if err != nil {
		report.Outcome = OutcomeFailed
		return report, errors.IOError("failed to list source folder", err)
	}
	report.InputFiles = len(names)
	if len(names) == 0 {
		report.Outcome = OutcomeNoInputs
		report.Diagnostic = core.NewNoInputFilesError(folder, measurement.InputExtension)
		s.logger.Warn("no %s files found in %s", measurement.InputExtension, folder)
		return report, nil
	}

	groups := measurement.GroupByPrefix(names)
	report.Ungrouped = ungrouped(names, groups)
	s.logger.Debug("[ConverterService] %d input files, %d groups, %d ungrouped",
		len(names), len(groups), len(report.Ungrouped))

	for _, group := range groups {
		if err := ctx.Err(); err != nil {
			report.Outcome = OutcomeFailed
			return report, err
		}

		result, err := s.builder.BuildGroup(ctx, folder, group)
		report.Groups = append(report.Groups, result)
		if err != nil {
			report.Outcome = OutcomeFailed
			return report, errors.WithCode(codeFor(err), fmt.Errorf("group %s: %w", group.Key, err))
		}
		s.logger.Info("workbook saved: %s", result.OutputPath)
	}

	report.Outcome = OutcomeCompleted
	return report, nil
}

func codeFor(err error) string {
	switch {
	case stderrors.Is(err, core.ErrValueParse):
		return errors.CodeParseError
	case stderrors.Is(err, core.ErrSaveFailed):
		return errors.CodeSaveError
	default:
		return errors.CodeIOError
	}
}

func ungrouped(names []string, groups []measurement.Group) []string {
	member := make(map[string]bool, len(names))
	for _, g := range groups {
		for _, f := range g.Files {
			member[f] = true
		}
	}
	var out []string
	for _, n := range names {
		if !member[n] {
			out = append(out, n)
		}
	}
	return out
}
