package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func newTestParser(t *testing.T) (*CLI, *kong.Kong) {
	t.Helper()
	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("gspdfc"),
		kong.Vars{"version": "test"},
	)
	return &cli, parser
}

func TestCLI_Structure(t *testing.T) {
	// Compile-time check that the expected commands exist
	var cli CLI
	_ = cli.Compress
	_ = cli.Check
	_ = cli.Version
}

func TestKongParsing_CompressCommand(t *testing.T) {
	testDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(testDir, "doc.pdf"), []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	testCases := []struct {
		name        string
		args        []string
		expectError bool
	}{
		{
			name:        "Explicit compress command",
			args:        []string{"compress", testDir},
			expectError: false,
		},
		{
			name:        "Default command with bare directory",
			args:        []string{testDir},
			expectError: false,
		},
		{
			name:        "All spec flags",
			args:        []string{testDir, "--dry-run", "--max-threads", "4", "--min-size", "10", "--log-file", filepath.Join(testDir, "run.log"), "--verbose"},
			expectError: false,
		},
		{
			name:        "Quality preset flag",
			args:        []string{testDir, "--pdf-settings", "ebook"},
			expectError: false,
		},
		{
			name:        "Invalid quality preset",
			args:        []string{testDir, "--pdf-settings", "maximum"},
			expectError: true,
		},
		{
			name:        "Missing directory",
			args:        []string{"compress"},
			expectError: true,
		},
		{
			name:        "Nonexistent directory",
			args:        []string{filepath.Join(testDir, "does-not-exist")},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, parser := newTestParser(t)

			ctx, err := parser.Parse(tc.args)

			if tc.expectError {
				if err == nil {
					t.Errorf("Expected error for args %v, but parsing succeeded", tc.args)
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error for args %v: %v", tc.args, err)
				return
			}
			if !strings.Contains(ctx.Command(), "compress") {
				t.Errorf("Expected 'compress' command, got %q", ctx.Command())
			}
		})
	}
}

func TestKongParsing_CompressFlagValues(t *testing.T) {
	testDir := t.TempDir()

	cli, parser := newTestParser(t)
	args := []string{testDir, "--dry-run", "--max-threads", "4", "--min-size", "2.5", "--pdf-settings", "printer", "--keep-original"}

	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("Failed to parse args %v: %v", args, err)
	}

	if cli.Compress.Directory != testDir {
		t.Errorf("Expected directory %q, got %q", testDir, cli.Compress.Directory)
	}
	if !cli.Compress.DryRun {
		t.Error("Expected DryRun to be set")
	}
	if cli.Compress.MaxThreads == nil || *cli.Compress.MaxThreads != 4 {
		t.Errorf("Expected MaxThreads 4, got %v", cli.Compress.MaxThreads)
	}
	if cli.Compress.MinSize != 2.5 {
		t.Errorf("Expected MinSize 2.5, got %g", cli.Compress.MinSize)
	}
	if cli.Compress.PDFSettings != "printer" {
		t.Errorf("Expected PDFSettings printer, got %q", cli.Compress.PDFSettings)
	}
	if !cli.Compress.KeepOriginal {
		t.Error("Expected KeepOriginal to be set")
	}
}

func TestKongParsing_MaxThreadsUnsetStaysNil(t *testing.T) {
	testDir := t.TempDir()

	cli, parser := newTestParser(t)
	if _, err := parser.Parse([]string{testDir}); err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cli.Compress.MaxThreads != nil {
		t.Errorf("Expected MaxThreads to stay nil when not passed, got %d", *cli.Compress.MaxThreads)
	}
}

func TestKongParsing_CheckCommand(t *testing.T) {
	_, parser := newTestParser(t)

	ctx, err := parser.Parse([]string{"check"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(ctx.Command(), "check") {
		t.Errorf("Expected 'check' command, got %q", ctx.Command())
	}
}

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if Version != "dev" {
		t.Logf("Version is %q (expected 'dev' for development builds)", Version)
	}
}
