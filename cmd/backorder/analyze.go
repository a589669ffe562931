package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qwicdev/backorder-analyzer/internal/catalog"
	"github.com/qwicdev/backorder-analyzer/internal/cli"
	"github.com/qwicdev/backorder-analyzer/internal/common"
	"github.com/qwicdev/backorder-analyzer/internal/config"
	"github.com/qwicdev/backorder-analyzer/internal/engine"
	"github.com/qwicdev/backorder-analyzer/internal/excel"
	"github.com/qwicdev/backorder-analyzer/internal/model"
	"github.com/qwicdev/backorder-analyzer/internal/report"
	"github.com/qwicdev/backorder-analyzer/internal/service"
	"github.com/qwicdev/backorder-analyzer/internal/storage"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <export.xlsx>",
		Short: "Run the backorder analysis on an export file",
		Long: `Read an ERP backorder export, split each sales order into shippable
and backorder lines, categorize the backorders, and write the analysis
workbook plus the email-draft report.`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("output", "o", "", "analysis workbook path")
	cmd.Flags().String("location", "", "filter on location code")
	cmd.Flags().String("reserved", "", "filter on fully-reserved flag")
	cmd.Flags().String("status", "", "filter on order status")

	_ = viper.BindPFlag("analyze.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("filters.location", cmd.Flags().Lookup("location"))
	_ = viper.BindPFlag("filters.reserved", cmd.Flags().Lookup("reserved"))
	_ = viper.BindPFlag("filters.status", cmd.Flags().Lookup("status"))

	return cmd
}

type runResult struct {
	summary *model.RunSummary
	err     error
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	viper.Set("analyze.input", args[0])
	cfg, err := config.LoadRunConfig()
	if err != nil {
		return err
	}

	store, err := catalog.Open(cfg.StoreDir, cfg.DefaultCategory)
	if err != nil {
		return fmt.Errorf("failed to open category store: %w", err)
	}

	// History is bookkeeping; the analysis itself must still run. A nil
	// interface (not a typed nil pointer) disables recording.
	var history service.Storage
	if db, histErr := storage.NewSQLiteStorage(cfg.HistoryPath); histErr != nil {
		fmt.Fprintln(os.Stderr, cli.FormatWarning(fmt.Sprintf("run history unavailable: %v", histErr)))
	} else {
		defer db.Close()
		history = db
	}

	analyzer := engine.NewAnalyzer(excel.NewReader(), store, report.NewExcelWriter(store), history)

	var bar *progressbar.ProgressBar
	analyzer.Progress = func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Processing orders..."),
			)
		}
		_ = bar.Set(done)
	}

	// The run executes on its own goroutine and is awaited here; once
	// started it runs to completion or failure.
	result := make(chan runResult, 1)
	go func() {
		summary, runErr := analyzer.Run(ctx, cfg)
		result <- runResult{summary: summary, err: runErr}
	}()
	res := <-result

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if res.err != nil {
		return common.NewUserError("analyse mislukt", res.err)
	}

	printSummary(res.summary)
	return nil
}

func printSummary(s *model.RunSummary) {
	content := fmt.Sprintf(`Orders: %d
Verzendbare regels: %d
Backorder regels: %d
Geen-aanpassing orders: %d
E-mail concepten: %d

Workbook: %s`,
		s.Orders, s.ShippableLines, s.BackorderLines, s.NoAdjustmentOrders, s.Drafts, s.OutputPath)

	if s.EmailReportPath != "" {
		content += fmt.Sprintf("\nE-mail rapport: %s", s.EmailReportPath)
	}

	fmt.Println(cli.RenderBox("Analyse voltooid", content))
}
