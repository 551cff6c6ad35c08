package pdf

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestIsPDFFile(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"Lowercase extension", "report.pdf", true},
		{"Uppercase extension", "REPORT.PDF", true},
		{"Mixed case extension", "report.Pdf", true},
		{"Nested path", "/docs/archive/scan.pdf", true},
		{"Text file", "notes.txt", false},
		{"PDF-like name without extension", "pdf", false},
		{"Double extension", "report.pdf.bak", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPDFFile(tt.path); got != tt.expected {
				t.Errorf("IsPDFFile(%q) = %v, expected %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestFindPDFFilesRecursively(t *testing.T) {
	testDir := t.TempDir()

	mustWrite := func(rel string) string {
		path := filepath.Join(testDir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create file: %v", err)
		}
		return path
	}

	want := []string{
		mustWrite("a.pdf"),
		mustWrite("nested/b.PDF"),
		mustWrite("nested/deeper/c.pdf"),
	}
	mustWrite("notes.txt")
	mustWrite("nested/image.jpg")
	sort.Strings(want)

	files, err := FindPDFFilesRecursively(testDir)
	if err != nil {
		t.Fatalf("FindPDFFilesRecursively failed: %v", err)
	}

	if len(files) != len(want) {
		t.Fatalf("Expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i, path := range want {
		if files[i] != path {
			t.Errorf("files[%d] = %q, expected %q", i, files[i], path)
		}
	}
}

func TestFindPDFFilesRecursively_RelativeRootYieldsAbsolutePaths(t *testing.T) {
	testDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(testDir, "doc.pdf"), []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(testDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})

	files, err := FindPDFFilesRecursively(".")
	if err != nil {
		t.Fatalf("FindPDFFilesRecursively failed: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("Expected 1 file, got %d: %v", len(files), files)
	}
	if !filepath.IsAbs(files[0]) {
		t.Errorf("Expected an absolute path, got %q", files[0])
	}
	if filepath.Base(files[0]) != "doc.pdf" {
		t.Errorf("Expected doc.pdf, got %q", files[0])
	}
}

func TestFindPDFFilesRecursively_MissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	if _, err := FindPDFFilesRecursively(missing); err == nil {
		t.Error("Expected error for missing root directory, got nil")
	}
}

func TestGetFileSize(t *testing.T) {
	testFile := filepath.Join(t.TempDir(), "sized.pdf")
	content := make([]byte, 1234)
	if err := os.WriteFile(testFile, content, 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	size, err := GetFileSize(testFile)
	if err != nil {
		t.Fatalf("GetFileSize failed: %v", err)
	}
	if size != 1234 {
		t.Errorf("Expected size 1234, got %d", size)
	}

	if _, err := GetFileSize(filepath.Join(t.TempDir(), "missing.pdf")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}
