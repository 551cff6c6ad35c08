package pdf

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// pdfCompatibilityLevel is the PDF version Ghostscript writes.
const pdfCompatibilityLevel = "1.4"

// renderingThreads is handed to Ghostscript as -dNumRenderingThreads.
// Per-process thread use is kept low because the worker pool already runs
// several Ghostscript processes in parallel.
const renderingThreads = 4

// buildGhostscriptArgs assembles the pdfwrite invocation for one file.
// The input path goes last, after -sOutputFile.
func buildGhostscriptArgs(options *CompressOptions, outputFile, inputFile string) []string {
	args := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=" + pdfCompatibilityLevel,
		"-dPDFSETTINGS=/" + options.PDFSettings,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
	}
	args = append(args, memoryArgs(options.MaxRAMGB)...)
	args = append(args, "-sOutputFile="+outputFile, inputFile)
	return args
}

// memoryArgs derives Ghostscript memory flags from a GB budget: 80% buffer
// space, 20% bitmap cache. A non-positive budget means Ghostscript defaults.
func memoryArgs(maxRAMGB int) []string {
	if maxRAMGB <= 0 {
		return nil
	}
	total := int64(maxRAMGB) * 1024 * 1024 * 1024
	return []string{
		fmt.Sprintf("-dBufferSpace=%d", total*8/10),
		fmt.Sprintf("-dMaxBitmap=%d", total*2/10),
		fmt.Sprintf("-dNumRenderingThreads=%d", renderingThreads),
	}
}

// GhostscriptVersion runs `command --version` and returns the reported version
func GhostscriptVersion(ctx context.Context, command string) (string, error) {
	cmd := exec.CommandContext(ctx, command, "--version")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get ghostscript version: %w", err)
	}

	version := strings.TrimSpace(string(output))
	if version == "" {
		return "", fmt.Errorf("could not detect ghostscript version")
	}
	return version, nil
}

// ghostscriptError wraps a failed invocation with the first stderr line,
// which is where Ghostscript puts its error summary
func ghostscriptError(err error, stderr string) error {
	if msg := firstLine(stderr); msg != "" {
		return fmt.Errorf("ghostscript failed: %w: %s", err, msg)
	}
	return fmt.Errorf("ghostscript failed: %w", err)
}

// firstLine extracts just the first non-empty line from a multi-line string
func firstLine(s string) string {
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
