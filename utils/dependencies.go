package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// gsCandidates are the Ghostscript binary names probed in order. The Windows
// console binaries ship under versioned names, hence the extra entries.
var gsCandidates = []string{"gs", "gswin64c", "gswin32c"}

// FindGhostscript locates the Ghostscript binary in PATH and returns its
// resolved path. Returns an error with installation instructions when no
// candidate is found.
func FindGhostscript() (string, error) {
	for _, name := range gsCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("ghostscript not found in PATH. %s", getInstallationInstructions())
}

// ValidateGhostscriptDependency checks that a Ghostscript binary is available.
// When command is non-empty it is validated as-is instead of the candidates.
func ValidateGhostscriptDependency(command string) error {
	if command != "" {
		if _, err := exec.LookPath(command); err != nil {
			return fmt.Errorf("ghostscript binary %q not found in PATH. %s", command, getInstallationInstructions())
		}
		return nil
	}
	_, err := FindGhostscript()
	return err
}

// getInstallationInstructions returns platform-specific installation instructions
func getInstallationInstructions() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ghostscript"
	case "linux":
		return "Install with: apt-get install ghostscript (Ubuntu/Debian) or yum install ghostscript (CentOS/RHEL)"
	case "windows":
		return "Download from https://ghostscript.com/releases/ and add to PATH"
	default:
		return "Download from https://ghostscript.com/releases/"
	}
}
