// Where: internal/command/test_helpers_test.go
// What: Shared helpers for command tests.
package command

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) runResult {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(args, Dependencies{Out: &out, ErrOut: &errOut})
	return runResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(content)
}

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to not exist (stat err=%v)", path, err)
	}
}
