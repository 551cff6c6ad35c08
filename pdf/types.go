package pdf

import "time"

// CompressOptions holds configuration for PDF compression runs
type CompressOptions struct {
	Command      string // Ghostscript binary; empty means auto-detect from PATH
	PDFSettings  string // -dPDFSETTINGS preset (screen, ebook, printer, prepress)
	MaxRAMGB     int    // memory budget handed to Ghostscript, in GB
	DryRun       bool   // simulate without invoking Ghostscript or touching files
	KeepOriginal bool   // keep the source file as .bak after replacing it
}

// DefaultCompressOptions returns the defaults matching a /screen quality run
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		PDFSettings: "screen", // strongest downsampling, smallest output
		MaxRAMGB:    15,
	}
}

// Job is one PDF queued for compression
type Job struct {
	Path         string
	OriginalSize int64
}

// CompressResult holds the outcome of compressing a single PDF
type CompressResult struct {
	Path           string
	OriginalSize   int64
	NewSize        int64
	SizeSavings    int64
	SavingsPercent float64
	Duration       time.Duration
	WasCompressed  bool
	WasSkipped     bool
	DryRun         bool
	SkipReason     string
	Error          error
}

// ToMB converts a byte count to megabytes
func ToMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}
