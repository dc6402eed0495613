package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	journalinadapter "symptrack/internal/modules/journal/adapter/in"
	journaloutadapter "symptrack/internal/modules/journal/adapter/out"
	journalout "symptrack/internal/modules/journal/port/out"
	journalservice "symptrack/internal/modules/journal/service"
	journalusecase "symptrack/internal/modules/journal/usecase"
	reportinadapter "symptrack/internal/modules/report/adapter/in"
	reportoutadapter "symptrack/internal/modules/report/adapter/out"
	reportdomain "symptrack/internal/modules/report/domain"
	reportservice "symptrack/internal/modules/report/service"
	reportusecase "symptrack/internal/modules/report/usecase"
	"symptrack/internal/platform/clock"
	"symptrack/internal/platform/config"
	"symptrack/internal/platform/tx"
	uiapp "symptrack/internal/ui/app"
)

type App struct {
	JournalCLI journalinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler
	Config     config.Config
	Logger     hclog.Logger
}

func New(cfg config.Config, logger hclog.Logger) (*App, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	clk := clock.SystemClock{}

	// The index only backs stats; the CSV file stays usable without it.
	var projector journalout.RecordProjector
	if p, err := journaloutadapter.NewSQLiteRecordProjector(cfg.DBPath); err != nil {
		logger.Warn("sqlite index unavailable", "path", cfg.DBPath, "error", err)
	} else {
		projector = p
	}

	journalUC := journalusecase.NewInteractor(journalservice.NewJournalService(
		clk,
		journaloutadapter.NewCSVRecordStore(cfg.StorePath),
		projector,
		logger,
	))

	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		reportoutadapter.NewJournalEntryAdapter(journalUC),
		reportoutadapter.NewGoChartRenderer(),
		reportoutadapter.NewPNGWriter(),
		reportoutadapter.NewFPDFDocumentWriter(logger.Named("pdf")),
		reportoutadapter.NewMarkdownNoteWriter(),
		reportoutadapter.NewPDFInspector(),
		reportoutadapter.NewOSLauncher(),
		tx.FileManager{},
		clk,
		reportservice.Settings{
			ReportsDir: cfg.ReportsDir,
			Labels:     reportdomain.Labels{DrugA: cfg.DrugA, DrugB: cfg.DrugB},
			Markdown:   cfg.Markdown,
		},
		logger,
	))

	return &App{
		JournalCLI: journalinadapter.NewCLIHandler(journalUC),
		ReportCLI:  reportinadapter.NewCLIHandler(reportUC),
		Config:     cfg,
		Logger:     logger,
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.JournalCLI, app.ReportCLI, uiapp.Labels{DrugA: app.Config.DrugA, DrugB: app.Config.DrugB})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
