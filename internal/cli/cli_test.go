package cli

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smokyabdulrahman/prayer-calc/internal/prayer"
)

// buildBinary compiles the prayer-calc binary to a temp directory for testing.
func buildBinary(t *testing.T, ldflags string) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "prayer-calc")

	args := []string{"build"}
	if ldflags != "" {
		args = append(args, "-ldflags", ldflags)
	}
	args = append(args, "-o", binPath, "../../cmd/prayer-calc")

	cmd := exec.Command("go", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build failed: %v\n%s", err, out)
	}
	return binPath
}

// TestVersionFlag verifies that --version prints the version string.
func TestVersionFlag(t *testing.T) {
	binPath := buildBinary(t, "-X main.version=v1.2.3-test")

	out, err := exec.Command(binPath, "--version").Output()
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}

	got := strings.TrimSpace(string(out))
	want := "prayer-calc version v1.2.3-test"
	if got != want {
		t.Errorf("--version = %q, want %q", got, want)
	}
}

// TestVersionFlag_Dev verifies the default "dev" version when no ldflags.
func TestVersionFlag_Dev(t *testing.T) {
	binPath := buildBinary(t, "")

	out, err := exec.Command(binPath, "--version").Output()
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}

	got := strings.TrimSpace(string(out))
	if !strings.HasPrefix(got, "prayer-calc version ") {
		t.Errorf("--version output unexpected: %q", got)
	}
}

// TestBinary_TimesExitCodes verifies the exit status of the built binary.
func TestBinary_TimesExitCodes(t *testing.T) {
	binPath := buildBinary(t, "")

	ok := exec.Command(binPath, "times", "--latitude", "21.4225", "--longitude", "39.8262", "--timezone", "3", "--date", "2024-03-20")
	ok.Env = []string{"HOME=" + t.TempDir(), "NO_COLOR=1"}
	out, err := ok.Output()
	if err != nil {
		t.Fatalf("times failed: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(string(out)), "\n"); len(lines) != 6 {
		t.Errorf("times printed %d lines, want 6:\n%s", len(lines), out)
	}

	bad := exec.Command(binPath, "times", "--latitude", "21.4", "--longitude", "39.8", "--elevation=-1")
	bad.Env = []string{"HOME=" + t.TempDir()}
	err = bad.Run()
	exitErr, isExit := err.(*exec.ExitError)
	if !isExit {
		t.Fatalf("expected ExitError, got %T: %v", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.ExitCode())
	}
}

// TestMethods_NoDuplicateIDs ensures no duplicate method IDs.
func TestMethods_NoDuplicateIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, m := range prayer.Methods {
		if seen[m.ID] {
			t.Errorf("duplicate calculation method ID: %d", m.ID)
		}
		seen[m.ID] = true
	}
}

// TestHelpFlag verifies that --help shows the expected subcommands.
func TestHelpFlag(t *testing.T) {
	out, err := execute(t, "--help")
	if err != nil {
		t.Fatalf("--help failed: %v", err)
	}

	expectedSubcommands := []string{
		"next",
		"list",
		"week",
		"month",
		"query",
		"times",
		"explain",
		"config",
		"methods",
		"cache",
	}
	for _, sub := range expectedSubcommands {
		if !strings.Contains(out, sub) {
			t.Errorf("--help output missing subcommand %q", sub)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	if got := PrintVersion("v0.1.0"); got != "prayer-calc v0.1.0\n" {
		t.Errorf("PrintVersion = %q", got)
	}
}
