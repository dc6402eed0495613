package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"symptrack/internal/bootstrap"
	journaldto "symptrack/internal/modules/journal/dto"
	"symptrack/internal/platform/config"
	apperrors "symptrack/internal/platform/errors"
	"symptrack/internal/platform/logging"
)

const dateLayout = "02-01-2006"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, apperrors.UserMessage(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "symptrack",
		Short:         "Post-operative and allergy symptom diary",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", ".", "data directory holding symptoms.csv and reports/")

	root.AddCommand(newInitCmd(&dataDir))
	root.AddCommand(newLogCmd(&dataDir))
	root.AddCommand(newListCmd(&dataDir))
	root.AddCommand(newChartCmd(&dataDir))
	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newReportCmd(&dataDir))
	root.AddCommand(newStatsCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newTimelineCmd(&dataDir))
	root.AddCommand(newTUICmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, logging.New(cfg.LogLevel, os.Stderr))
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the symptrack terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(*dataDir)
			if err != nil {
				return err
			}
			// The alt screen owns the terminal, so logs go to a file.
			logPath := filepath.Join(filepath.Dir(cfg.DBPath), "tui.log")
			if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
				return apperrors.WrapIO("create directory for", logPath, err)
			}
			logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return apperrors.WrapIO("open", logPath, err)
			}
			defer logFile.Close()

			app, err := bootstrap.New(cfg, logging.New(cfg.LogLevel, logFile))
			if err != nil {
				return err
			}
			if err := app.JournalCLI.Initialize(context.Background()); err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newInitCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the symptom file with its header if it does not exist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if err := app.JournalCLI.Initialize(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "store ready at %s\n", app.Config.StorePath)
			return nil
		},
	}
}

// logFlags maps command-line flags onto persisted columns.
var logFlags = []struct {
	flag   string
	column string
	usage  string
}{
	{"date", "date", "entry date DD-MM-YYYY (defaults to today)"},
	{"congestion", "congestion", "nasal congestion 0-10"},
	{"itch", "itch", "nasal itch 0-10"},
	{"facial-pain", "facial_pain", "none|mild|moderate|severe"},
	{"discharge", "nasal_discharge", "none|clear|thick|bloody"},
	{"breathing", "breathing_difficulty", "none|mild|moderate|severe"},
	{"cough", "cough", "none|dry|productive|persistent"},
	{"sneezing", "sneezing", "sneezing 0-10"},
	{"rash", "skin_rash", "none|mild|moderate|severe"},
	{"hives", "hives", "none|localized|generalized"},
	{"swelling", "swelling", "none|facial|lips_eyes|generalized"},
	{"drug-a", "drugA_suspended", "no|today|1_day_ago|2_3_days_ago|more_3_days_ago"},
	{"drug-b", "drugB_suspended", "no|today|1_day_ago|2_3_days_ago|more_3_days_ago"},
	{"other-meds", "other_medications", "other medications taken"},
	{"days-post-op", "days_post_op", "days since surgery"},
	{"improvement", "breathing_improvement", "no_change|slightly_better|much_better|worsening"},
	{"notes", "notes", "free-form notes"},
}

func newLogCmd(dataDir *string) *cobra.Command {
	values := make(map[string]*string, len(logFlags))
	var confirm bool

	logCmd := &cobra.Command{
		Use:   "log",
		Short: "Append one symptom entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			var input journaldto.RecordInput
			for _, f := range logFlags {
				input.Set(f.column, *values[f.flag])
			}
			out, err := app.JournalCLI.Log(context.Background(), input, confirm)
			printAdvisories(cmd.ErrOrStderr(), out.Advisories)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved entry %d for %s\n", out.Seq, out.Record.Date.Format(dateLayout))
			// The display chart follows every save; a failed redraw does not undo it.
			if _, err := app.ReportCLI.RenderChart(context.Background(), "", false); err != nil {
				app.Logger.Warn("chart redraw after save failed", "error", err)
			}
			return nil
		},
	}
	for _, f := range logFlags {
		values[f.flag] = logCmd.Flags().String(f.flag, "", f.usage)
	}
	logCmd.Flags().BoolVarP(&confirm, "yes", "y", false, "save even when both drugs are still being taken")
	return logCmd
}

func printAdvisories(w io.Writer, advisories []journaldto.AdvisoryOutput) {
	for _, a := range advisories {
		_, _ = fmt.Fprintf(w, "[%s] %s\n", a.Kind, a.Message)
	}
}

func newListCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entries sorted by date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			records, err := app.JournalCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no entries")
				return nil
			}
			for _, r := range records {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tcongestion=%d\titch=%d\tsneezing=%d\tpain=%s\tdrugA=%s\tdrugB=%s\tpost-op=%d\n",
					r.Date.Format(dateLayout), r.Congestion, r.Itch, r.Sneezing, dash(r.FacialPain),
					dash(r.DrugASuspended), dash(r.DrugBSuspended), r.DaysPostOp)
			}
			return nil
		},
	}
}

func dash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func newChartCmd(dataDir *string) *cobra.Command {
	var outPath string
	var open bool

	chart := &cobra.Command{
		Use:   "chart",
		Short: "Render the four-panel chart to a PNG file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.RenderChart(context.Background(), outPath, open)
			if err != nil {
				return err
			}
			if out.Placeholder {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no entries yet; wrote placeholder chart to %s\n", out.Path)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "chart of %d entries written to %s\n", out.Entries, out.Path)
			return nil
		},
	}
	chart.Flags().StringVar(&outPath, "out", "", "output path (defaults to <reports>/chart.png)")
	chart.Flags().BoolVar(&open, "open", false, "open the image with the system viewer")
	return chart
}

func newExportCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export a PDF report and chart image to the reports directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Export(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "exported %d entries (%s)\n", out.Entries, out.Stamp)
			_, _ = fmt.Fprintf(w, "report: %s\n", out.PDFPath)
			_, _ = fmt.Fprintf(w, "chart:  %s\n", out.ChartPath)
			if out.NotePath != "" {
				_, _ = fmt.Fprintf(w, "note:   %s\n", out.NotePath)
			}
			return nil
		},
	}
}

func newReportCmd(dataDir *string) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Exported report utilities"}

	report.AddCommand(&cobra.Command{
		Use:   "inspect <pdf>",
		Short: "Show the page count and first page text of an exported report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Inspect(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d page(s)\n%s\n", out.Path, out.Pages, out.FirstPage)
			return nil
		},
	})
	return report
}

func newStatsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show weekly symptom averages from the index",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			stats, err := app.JournalCLI.WeeklyStats(context.Background())
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no indexed entries; run reindex")
				return nil
			}
			for _, s := range stats {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tentries=%d\tcongestion=%.1f\titch=%.1f\tsneezing=%.1f\tpain=%.1f\n",
					s.Week, s.Entries, s.MeanCongestion, s.MeanItch, s.MeanSneezing, s.MeanPain)
			}
			return nil
		},
	}
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the SQLite index from the symptom file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			count, err := app.JournalCLI.Reindex(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d entries\n", count)
			return nil
		},
	}
}

func newTimelineCmd(dataDir *string) *cobra.Command {
	var daysPostOp, daysSinceSuspension int

	timeline := &cobra.Command{
		Use:   "timeline",
		Short: "Locate recovery phases for surgery, withdrawal and allergy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			tracks, err := app.JournalCLI.Timeline(context.Background(), daysPostOp, daysSinceSuspension)
			if err != nil {
				return err
			}
			for _, t := range tracks {
				switch {
				case !t.Started:
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tnot started\n", t.Track)
				case t.Finished:
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tday %d\tcomplete\n", t.Track, t.Day)
				default:
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tday %d\t%s: %s\n", t.Track, t.Day, t.Current.Label, t.Current.Description)
				}
			}
			return nil
		},
	}
	timeline.Flags().IntVar(&daysPostOp, "days-post-op", -1, "days since surgery (defaults to the latest entry)")
	timeline.Flags().IntVar(&daysSinceSuspension, "days-since-suspension", -1, "days since stopping the decongestant (defaults to the latest entry)")
	return timeline
}
