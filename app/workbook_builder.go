package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"prnbook/domain/core"
	"prnbook/domain/measurement"
	"prnbook/internal"
	"prnbook/ports"
)

// WorkbookExtension is appended to the group key to name its workbook
const WorkbookExtension = ".xlsx"

// BuilderConfig holds the output layout a WorkbookBuilder applies
type BuilderConfig struct {
	PhaseHeader string
	Style       ports.CellStyle
}

// WorkbookBuilder turns one group of files into one saved workbook
type WorkbookBuilder struct {
	factory ports.WorkbookFactory
	writer  *SheetWriter
	config  BuilderConfig
	logger  *internal.Logger
}

// GroupResult is the outcome of building one group
type GroupResult struct {
	Key        string          `json:"key"`
	OutputPath string          `json:"output_path"`
	Files      []FileStats     `json:"files"`
	Ignored    []string        `json:"ignored,omitempty"` // Members with no channel code or phase marker
	Columns    []ColumnSummary `json:"columns"`
	Saved      bool            `json:"saved"`
}

// NewWorkbookBuilder creates a builder
func NewWorkbookBuilder(factory ports.WorkbookFactory, writer *SheetWriter, config BuilderConfig, logger *internal.Logger) *WorkbookBuilder {
	if config.PhaseHeader == "" {
		config.PhaseHeader = measurement.DefaultPhaseLabel
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &WorkbookBuilder{factory: factory, writer: writer, config: config, logger: logger}
}

// OutputPath is where a group's workbook is saved
func OutputPath(folder, key string) string {
	return filepath.Join(folder, key+WorkbookExtension)
}

// BuildGroup writes every file of group into a fresh workbook and saves it as
// <folder>/<key>.xlsx. Channel files get columns from 2 upward in the order
// their code is first seen (files sorted by name); phase files all share the
// column after the last channel. An existing workbook is overwritten.
func (b *WorkbookBuilder) BuildGroup(ctx context.Context, folder string, group measurement.Group) (*GroupResult, error) {
	result := &GroupResult{Key: group.Key, OutputPath: OutputPath(folder, group.Key)}

	wb, err := b.factory.NewWorkbook()
	if err != nil {
		return result, fmt.Errorf("failed to create workbook for %s: %w", group.Key, err)
	}
	defer wb.Close()

	files := append([]string(nil), group.Files...)
	sort.Strings(files)

	columns := measurement.NewColumnAssignment()
	summaries := newColumnCollector()
	var phaseFiles []string

	for _, name := range files {
		class, ok := measurement.Classify(name)
		if !ok {
			result.Ignored = append(result.Ignored, name)
			b.logger.Debug("[WorkbookBuilder] %s: no channel code or phase marker, skipped", name)
			continue
		}
		if class.IsPhase() {
			phaseFiles = append(phaseFiles, name)
			continue
		}

		col, created := columns.Assign(class.Label)
		if created {
			if err := wb.SetHeader(col, class.Label); err != nil {
				return result, fmt.Errorf("failed to write header %s: %w", class.Label, err)
			}
		}
		if err := b.writeMember(ctx, wb, folder, name, class.Label, col, summaries, result); err != nil {
			return result, err
		}
	}

	if len(phaseFiles) > 0 {
		col := columns.PhaseColumn()
		if err := wb.SetHeader(col, b.config.PhaseHeader); err != nil {
			return result, fmt.Errorf("failed to write phase header: %w", err)
		}
		for _, name := range phaseFiles {
			if err := b.writeMember(ctx, wb, folder, name, b.config.PhaseHeader, col, summaries, result); err != nil {
				return result, err
			}
		}
	}

	if err := wb.SaveAs(result.OutputPath); err != nil {
		return result, core.NewSaveError(result.OutputPath, err)
	}
	result.Saved = true
	result.Columns = summaries.summaries()

	return result, nil
}

func (b *WorkbookBuilder) writeMember(ctx context.Context, wb ports.Workbook, folder, name, label string, col int, summaries *columnCollector, result *GroupResult) error {
	stats, err := b.writer.WriteFile(ctx, wb, filepath.Join(folder, name), col, b.config.Style)
	if err != nil {
		return err
	}
	result.Files = append(result.Files, stats)
	summaries.add(label, col, stats.Values)
	return nil
}
