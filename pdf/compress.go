package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/moroii69/gspdfc/utils"
)

// Compress runs Ghostscript on one PDF and replaces it in place when the
// output is smaller than the original. Errors are reported through the
// result, never returned, so one bad file cannot abort a batch.
func Compress(ctx context.Context, pdfFile string, options *CompressOptions) *CompressResult {
	start := time.Now()
	result := &CompressResult{
		Path: pdfFile,
	}

	if ctx.Err() != nil {
		result.WasSkipped = true
		result.SkipReason = "interrupted"
		return result
	}

	if !IsPDFFile(pdfFile) {
		result.WasSkipped = true
		result.SkipReason = "not a PDF file"
		return result
	}

	originalSize, err := GetFileSize(pdfFile)
	if err != nil {
		result.Error = fmt.Errorf("failed to get original file size: %w", err)
		return result
	}
	result.OriginalSize = originalSize

	if options.DryRun {
		// Simulate a typical /screen run (~20% reduction) for reporting.
		// The file and Ghostscript are never touched.
		result.DryRun = true
		result.NewSize = originalSize * 8 / 10
		result.SizeSavings = originalSize - result.NewSize
		if originalSize > 0 {
			result.SavingsPercent = float64(result.SizeSavings) / float64(originalSize)
		}
		result.Duration = time.Since(start)
		return result
	}

	command := options.Command
	if command == "" {
		command, err = utils.FindGhostscript()
		if err != nil {
			result.Error = err
			return result
		}
	}

	// Write to a sibling temp file so a failed or unprofitable run never
	// clobbers the original.
	ext := filepath.Ext(pdfFile)
	tempFile := strings.TrimSuffix(pdfFile, ext) + "_compressed" + ext
	defer func() {
		// Clean up temp file if it still exists
		_ = os.Remove(tempFile)
	}()

	args := buildGhostscriptArgs(options, tempFile, pdfFile)
	cmd := exec.CommandContext(ctx, command, args...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	if runErr := cmd.Run(); runErr != nil {
		result.Error = ghostscriptError(runErr, stderrBuf.String())
		return result
	}

	newSize, err := GetFileSize(tempFile)
	if err != nil {
		result.Error = fmt.Errorf("failed to get compressed file size: %w", err)
		return result
	}
	result.NewSize = newSize
	result.SizeSavings = originalSize - newSize
	if originalSize > 0 {
		result.SavingsPercent = float64(result.SizeSavings) / float64(originalSize)
	}
	result.Duration = time.Since(start)

	// Ghostscript can produce a larger file than the input, typically on
	// PDFs that are already aggressively compressed. Keep the original.
	if newSize >= originalSize {
		result.WasSkipped = true
		result.SkipReason = fmt.Sprintf("no size gain (%.2f MB -> %.2f MB)",
			ToMB(originalSize), ToMB(newSize))
		return result
	}

	// If we should keep the original, rename it first
	if options.KeepOriginal {
		backupFile := pdfFile + ".bak"
		if err := os.Rename(pdfFile, backupFile); err != nil {
			result.Error = fmt.Errorf("failed to backup original file: %w", err)
			return result
		}
	}

	// Replace original with the compressed version
	if err := os.Rename(tempFile, pdfFile); err != nil {
		// If we backed up the original, try to restore it
		if options.KeepOriginal {
			_ = os.Rename(pdfFile+".bak", pdfFile)
		}
		result.Error = fmt.Errorf("failed to replace original file: %w", err)
		return result
	}

	result.WasCompressed = true
	return result
}
