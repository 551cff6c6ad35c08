package pdf

import (
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// IsPDFFile checks if the given path has a PDF extension
func IsPDFFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".pdf"
}

// FindPDFFilesRecursively scans a directory tree for PDF files and returns
// absolute paths sorted lexicographically for deterministic processing order
func FindPDFFilesRecursively(directory string) ([]string, error) {
	var files []string
	var err error

	// Use fd if available for better performance, otherwise fall back to filepath.WalkDir
	if isFdAvailable() {
		files, err = findPDFsWithFd(directory)
		if err != nil {
			// If fd fails, fall back to the standard method
			files, err = findPDFsWithWalkDir(directory)
		}
	} else {
		files, err = findPDFsWithWalkDir(directory)
	}

	if err != nil {
		return nil, err
	}

	// Both discovery methods may report paths relative to the root; always
	// hand callers the same absolute form.
	for i, file := range files {
		if abs, absErr := filepath.Abs(file); absErr == nil {
			files[i] = abs
		}
	}

	sort.Strings(files)
	return files, nil
}

// GetFileSize returns the size of a file in bytes
func GetFileSize(filePath string) (int64, error) {
	fi, err := os.Stat(filePath)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}

// isFdAvailable checks if the 'fd' command is available in PATH
func isFdAvailable() bool {
	_, err := exec.LookPath("fd")
	return err == nil
}

// findPDFsWithWalkDir uses filepath.WalkDir to find PDF files (fallback method)
func findPDFsWithWalkDir(directory string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(directory, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if IsPDFFile(path) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// findPDFsWithFd uses the 'fd' command to efficiently find PDF files
func findPDFsWithFd(directory string) ([]string, error) {
	cmd := exec.Command("fd", `\.pdf$`, "--type", "f", "--ignore-case", "--absolute-path", directory)
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	var files []string
	for _, line := range lines {
		if line != "" && IsPDFFile(line) {
			files = append(files, line)
		}
	}

	return files, nil
}
