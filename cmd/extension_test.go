package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// savg-hello prints the environment it received.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvConfigFile, EnvConfigFile, EnvVerbose, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "savg-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write savg-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile savg-hello: %v", err)
	}

	savgBinaryPath := filepath.Join(tempDir, "savg")
	build = exec.Command("go", "build", "-o", savgBinaryPath, "../savg")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile savg binary: %v", err)
	}

	expectedConfigFile := filepath.Join(tempDir, "custom.yaml")
	args := []string{
		"-config", expectedConfigFile,
		"-v",
		"hello", // The extension subcommand
		"world",
	}

	savgCmd := exec.Command(savgBinaryPath, args...)
	savgCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	savgCmd.Stdout = &stdout
	savgCmd.Stderr = &stderr

	if err := savgCmd.Run(); err != nil {
		t.Fatalf("savg command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, expectedLine := range []string{
		EnvConfigFile + "=" + expectedConfigFile,
		EnvVerbose + "=" + strconv.FormatBool(true),
		"args=[world]",
	} {
		if !strings.Contains(output, expectedLine) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expectedLine, output)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	found, code := RunExtension("does-not-exist", nil)

	if found || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", found, code)
	}
}
