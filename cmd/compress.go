package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/moroii69/gspdfc/logging"
	"github.com/moroii69/gspdfc/pdf"
	"github.com/moroii69/gspdfc/types"
	"github.com/moroii69/gspdfc/ui"
	"github.com/moroii69/gspdfc/utils"
)

type CompressCmd struct {
	Directory    string  `arg:"" name:"directory" help:"Directory containing PDFs to compress" type:"existingdir"`
	DryRun       bool    `help:"Simulate compression without modifying files"`
	MaxThreads   *int    `help:"Max number of concurrent workers (default: number of CPUs)" placeholder:"N"`
	MinSize      float64 `help:"Skip files smaller than this many megabytes" default:"0" placeholder:"MB"`
	LogFile      string  `help:"Append run summary (and verbose per-file lines) to this file" type:"path"`
	Verbose      bool    `help:"Emit a line per file as results arrive"`
	PDFSettings  string  `name:"pdf-settings" help:"Ghostscript quality preset" enum:"screen,ebook,printer,prepress" default:"screen"`
	GsCommand    string  `name:"gs-command" help:"Ghostscript binary to invoke (default: auto-detect)"`
	MaxRAM       int     `name:"max-ram" help:"Memory budget handed to Ghostscript, in GB" default:"15"`
	KeepOriginal bool    `help:"Keep original files as .bak"`
	Report       string  `help:"Append per-file results to this CSV file" type:"path"`
	HTMLReport   string  `name:"html-report" help:"Write an HTML results table to this file" type:"path"`
}

func (cmd *CompressCmd) Run(ctx context.Context, appCtx *types.AppContext) error {
	version := types.DefaultVersion
	if appCtx != nil {
		version = appCtx.Version
	}

	if cmd.MaxThreads != nil && *cmd.MaxThreads <= 0 {
		return usageErrorf("--max-threads must be a positive number (got %d)", *cmd.MaxThreads)
	}
	if cmd.MinSize < 0 {
		return usageErrorf("--min-size must not be negative (got %g)", cmd.MinSize)
	}

	log, err := logging.NewLogger(cmd.LogFile)
	if err != nil {
		return usageErrorf("cannot open log file: %v", err)
	}
	defer func() { _ = log.Close() }()

	files, err := pdf.FindPDFFilesRecursively(cmd.Directory)
	if err != nil {
		return fmt.Errorf("failed to scan directory %s: %w", cmd.Directory, err)
	}

	if len(files) == 0 {
		log.Info("no PDF files found under %s", cmd.Directory)
		return nil
	}

	// A missing Ghostscript binary is not fatal: every job fails and the
	// run still produces a complete summary.
	if !cmd.DryRun {
		if depErr := utils.ValidateGhostscriptDependency(cmd.GsCommand); depErr != nil {
			log.Warn("%v", depErr)
		}
	}

	workers := cmd.workerCount(files, log)
	options := &pdf.CompressOptions{
		Command:      cmd.GsCommand,
		PDFSettings:  cmd.PDFSettings,
		MaxRAMGB:     cmd.MaxRAM,
		DryRun:       cmd.DryRun,
		KeepOriginal: cmd.KeepOriginal,
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("gspdfc %s", version)))
	if cmd.DryRun {
		fmt.Println(ui.ProcessingStyle.Render("DRY RUN MODE - no files will be modified"))
	}
	log.Info("compressing %d files with %d workers (preset /%s, min size %.1f MB)",
		len(files), workers, cmd.PDFSettings, cmd.MinSize)

	stats := cmd.process(ctx, files, workers, options, log)

	if ctx.Err() != nil {
		log.Warn("interrupted, stopped dispatching new files")
	}

	cmd.printSummary(stats, log)

	if err := cmd.writeReports(stats, log); err != nil {
		log.Error("%v", err)
		return err
	}

	if stats.FailedCount > 0 {
		return ErrFilesFailed
	}
	return nil
}

// workerCount resolves the pool size: explicit --max-threads wins, a network
// mount among the candidates drops to a single worker, otherwise one worker
// per CPU.
func (cmd *CompressCmd) workerCount(files []string, log *logging.Logger) int {
	if cmd.MaxThreads != nil {
		return *cmd.MaxThreads
	}

	for _, file := range files {
		if utils.IsNetworkDrive(file) {
			log.Warn("network drive detected, using 1 worker for optimal performance")
			return 1
		}
	}
	return runtime.NumCPU()
}

// process filters candidates by size and runs the remainder through a
// bounded worker pool, aggregating every result on the calling goroutine.
func (cmd *CompressCmd) process(ctx context.Context, files []string, workers int, options *pdf.CompressOptions, log *logging.Logger) *compressStats {
	stats := &compressStats{Discovered: len(files)}

	minBytes := int64(cmd.MinSize * 1024 * 1024)
	var queue []pdf.Job
	for _, file := range files {
		size, err := pdf.GetFileSize(file)
		if err != nil {
			cmd.handleResult(&pdf.CompressResult{
				Path:  file,
				Error: fmt.Errorf("failed to get file size: %w", err),
			}, stats, log)
			continue
		}
		if size < minBytes {
			cmd.handleResult(&pdf.CompressResult{
				Path:         file,
				OriginalSize: size,
				WasSkipped:   true,
				SkipReason: fmt.Sprintf("below size threshold (%.2f MB < %.2f MB)",
					pdf.ToMB(size), cmd.MinSize),
			}, stats, log)
			continue
		}
		queue = append(queue, pdf.Job{Path: file, OriginalSize: size})
	}

	if len(queue) == 0 {
		return stats
	}

	bar := progressbar.NewOptions(len(queue),
		progressbar.OptionSetDescription("compressing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	jobs := make(chan pdf.Job, len(queue))
	results := make(chan *pdf.CompressResult, len(queue))
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for job := range jobs {
				log.Debug(cmd.Verbose, "worker %d: processing %s", workerID+1, job.Path)
				results <- pdf.Compress(ctx, job.Path, options)
			}
		}(i)
	}

	// Send jobs
	for _, job := range queue {
		jobs <- job
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	// Aggregate results as they arrive
	for result := range results {
		cmd.handleResult(result, stats, log)
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return stats
}

// handleResult classifies one result and updates statistics
func (cmd *CompressCmd) handleResult(result *pdf.CompressResult, stats *compressStats, log *logging.Logger) {
	stats.Results = append(stats.Results, result)

	switch {
	case result.Error != nil:
		stats.FailedCount++
		stats.Failures = append(stats.Failures, result)
		log.Error("%s: %v", result.Path, result.Error)

	case result.DryRun:
		stats.WouldCompressCount++
		stats.TotalOriginalSize += result.OriginalSize
		log.Debug(cmd.Verbose, "would compress %s (%.2f MB)",
			result.Path, pdf.ToMB(result.OriginalSize))

	case result.WasSkipped:
		stats.SkippedCount++
		log.Debug(cmd.Verbose, "skipped %s: %s", result.Path, result.SkipReason)

	case result.WasCompressed:
		stats.CompressedCount++
		stats.TotalOriginalSize += result.OriginalSize
		stats.TotalNewSize += result.NewSize
		stats.TotalSavings += result.SizeSavings
		log.Debug(cmd.Verbose, "compressed %s: %.2f MB -> %.2f MB (saved %.1f%%) in %.2fs",
			result.Path, pdf.ToMB(result.OriginalSize), pdf.ToMB(result.NewSize),
			result.SavingsPercent*100, result.Duration.Seconds())
	}
}

// printSummary displays the per-file results table and the aggregate summary.
// The plain summary is duplicated into the log file when one is configured.
func (cmd *CompressCmd) printSummary(stats *compressStats, log *logging.Logger) {
	var rows [][]string
	for _, r := range stats.Results {
		if !r.WasCompressed && !r.DryRun {
			continue
		}
		rows = append(rows, []string{
			filepath.Base(r.Path),
			fmt.Sprintf("%.2f", pdf.ToMB(r.OriginalSize)),
			fmt.Sprintf("%.2f", pdf.ToMB(r.NewSize)),
			fmt.Sprintf("%.2f", r.SavingsPercent*100),
			fmt.Sprintf("%.2f", r.Duration.Seconds()),
		})
	}
	if len(rows) > 0 {
		headers := []string{"File Name", "Original (MB)", "Compressed (MB)", "Reduction (%)", "Time (s)"}
		fmt.Println(ui.ResultsTable(headers, rows))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Run summary:\n")
	fmt.Fprintf(&b, "  discovered: %d\n", stats.Discovered)
	if cmd.DryRun {
		fmt.Fprintf(&b, "  would compress: %d\n", stats.WouldCompressCount)
	} else {
		fmt.Fprintf(&b, "  compressed: %d\n", stats.CompressedCount)
	}
	fmt.Fprintf(&b, "  skipped: %d\n", stats.SkippedCount)
	fmt.Fprintf(&b, "  failed: %d\n", stats.FailedCount)
	if stats.CompressedCount > 0 {
		fmt.Fprintf(&b, "  total space saved: %.2f MB (%.2f MB -> %.2f MB)\n",
			pdf.ToMB(stats.TotalSavings),
			pdf.ToMB(stats.TotalOriginalSize), pdf.ToMB(stats.TotalNewSize))
	}
	for _, f := range stats.Failures {
		fmt.Fprintf(&b, "  failed: %s: %v\n", f.Path, f.Error)
	}
	plain := b.String()
	log.Raw(plain, plain)

	if stats.FailedCount > 0 {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("completed with %d failures", stats.FailedCount)))
	} else {
		fmt.Println(ui.SuccessStyle.Render("compression complete"))
	}
}

// writeReports writes the CSV and HTML reports when requested
func (cmd *CompressCmd) writeReports(stats *compressStats, log *logging.Logger) error {
	if cmd.Report != "" {
		if err := pdf.AppendCSVReport(cmd.Report, stats.Results); err != nil {
			return fmt.Errorf("failed to write CSV report: %w", err)
		}
		log.Info("CSV report written to %s", cmd.Report)
	}
	if cmd.HTMLReport != "" {
		if err := pdf.WriteHTMLReport(cmd.HTMLReport, stats.Results); err != nil {
			return fmt.Errorf("failed to write HTML report: %w", err)
		}
		log.Info("HTML report written to %s", cmd.HTMLReport)
	}
	return nil
}

// compressStats tracks aggregate outcomes for a run. It is only ever touched
// from the aggregator loop, so no locking is needed.
type compressStats struct {
	Discovered         int
	CompressedCount    int
	WouldCompressCount int
	SkippedCount       int
	FailedCount        int
	TotalOriginalSize  int64
	TotalNewSize       int64
	TotalSavings       int64
	Results            []*pdf.CompressResult
	Failures           []*pdf.CompressResult
}
