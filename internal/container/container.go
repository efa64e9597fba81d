package container

import (
	"fmt"

	"prnbook/adapters/excel"
	"prnbook/app"
	"prnbook/internal"
	"prnbook/internal/config"
	"prnbook/internal/source"
	"prnbook/ports"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure
	Storage  *source.LocalFileStorage
	Workbook ports.WorkbookFactory

	// Services
	SheetWriter *app.SheetWriter
	Builder     *app.WorkbookBuilder
	Converter   *app.ConverterService
}

// New wires the converter pipeline from cfg
func New(cfg *config.Config, logger *internal.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = internal.DefaultLogger
	}

	storage, err := source.NewLocalFileStorage(&source.StorageConfig{Encoding: cfg.Source.Encoding})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize source storage: %w", err)
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Storage:  storage,
		Workbook: excel.NewFactory(excel.WorkbookConfig{SheetName: cfg.Output.SheetName}),
	}

	c.SheetWriter = app.NewSheetWriter(c.Storage, logger)
	c.Builder = app.NewWorkbookBuilder(c.Workbook, c.SheetWriter, app.BuilderConfig{
		PhaseHeader: cfg.Output.PhaseHeader,
		Style:       ports.CellStyle{NumberFormat: cfg.Output.NumberFormat},
	}, logger)
	c.Converter = app.NewConverterService(c.Storage, c.Builder, logger)

	return c, nil
}
