package adapter

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

// These tests run small POSIX utilities instead of real test frameworks.

func TestLocalTestRunnerAdapter_Run_Success(t *testing.T) {
	adapter := NewLocalTestRunnerAdapter()
	workDir := t.TempDir()

	out, err := adapter.Run(context.Background(), m.Path(workDir), []m.CommandStep{
		{Command: "echo 'first step'"},
		{Command: "echo second"},
	}, nil)
	if err != nil {
		t.Fatalf("Run() error = %v, output = %s", err, out)
	}

	if !strings.Contains(out, "first step") || !strings.Contains(out, "second") {
		t.Fatalf("Run() output missing step output: %q", out)
	}
}

func TestLocalTestRunnerAdapter_Run_StopsOnFailure(t *testing.T) {
	adapter := NewLocalTestRunnerAdapter()

	out, err := adapter.Run(context.Background(), m.Path(t.TempDir()), []m.CommandStep{
		{Command: "false"},
		{Command: "echo unreachable"},
	}, nil)
	if err == nil {
		t.Fatalf("Run() expected error from failing step")
	}

	if strings.Contains(out, "unreachable") {
		t.Fatalf("Run() continued after a failing step: %q", out)
	}
}

func TestLocalTestRunnerAdapter_Run_SkipConditions(t *testing.T) {
	adapter := NewLocalTestRunnerAdapter()
	workDir := t.TempDir()
	mustMkdir(t, filepath.Join(workDir, "node_modules"))

	out, err := adapter.Run(context.Background(), m.Path(workDir), []m.CommandStep{
		{Command: "echo install", SkipIfExists: "node_modules"},
		{Command: "echo probe-install", SkipIfSucceeds: "true"},
		{Command: "echo needed", SkipIfSucceeds: "false"},
	}, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if strings.Contains(out, "install") {
		t.Fatalf("Run() executed a step that should be skipped: %q", out)
	}

	if !strings.Contains(out, "needed") {
		t.Fatalf("Run() skipped a step whose probe failed: %q", out)
	}
}

func TestLocalTestRunnerAdapter_Run_Env(t *testing.T) {
	t.Setenv("PYTHONPATH", "/existing")

	var streamed bytes.Buffer
	adapter := NewLocalTestRunnerAdapter(WithRunnerStream(&streamed))

	out, err := adapter.Run(context.Background(), m.Path(t.TempDir()), []m.CommandStep{
		{Command: `sh -c 'echo "$PYTHONPATH|$TESTGENIE_MARKER"'`},
	}, map[string]string{"PYTHONPATH": "/src", "TESTGENIE_MARKER": "set"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "/src" + string(os.PathListSeparator) + "/existing|set"
	if !strings.Contains(out, want) {
		t.Fatalf("Run() output = %q, want %q", out, want)
	}

	if streamed.String() != out {
		t.Fatalf("stream = %q, want %q", streamed.String(), out)
	}
}

func TestLocalTestRunnerAdapter_Run_InvalidCommand(t *testing.T) {
	adapter := NewLocalTestRunnerAdapter()

	if _, err := adapter.Run(context.Background(), m.Path(t.TempDir()), []m.CommandStep{{Command: "echo 'unterminated"}}, nil); err == nil {
		t.Fatalf("Run() expected parse error")
	}

	if _, err := adapter.Run(context.Background(), m.Path(t.TempDir()), []m.CommandStep{{Command: "   "}}, nil); err == nil {
		t.Fatalf("Run() expected error for empty command")
	}
}

func TestLocalTestRunnerAdapter_Run_Timeout(t *testing.T) {
	adapter := NewLocalTestRunnerAdapter(WithRunnerTimeout(50 * time.Millisecond))

	if _, err := adapter.Run(context.Background(), m.Path(t.TempDir()), []m.CommandStep{{Command: "sleep 5"}}, nil); err == nil {
		t.Fatalf("Run() expected timeout error")
	}
}

func TestMergeEnv(t *testing.T) {
	merged := mergeEnv([]string{"HOME=/root", "PATH=/bin", "EMPTYPATH="}, map[string]string{
		"PATH":      "/opt/bin",
		"EMPTYPATH": "/x",
		"NEW":       "1",
	})

	want := map[string]string{
		"HOME":      "/root",
		"PATH":      "/opt/bin" + string(os.PathListSeparator) + "/bin",
		"EMPTYPATH": "/x",
		"NEW":       "1",
	}

	if len(merged) != len(want) {
		t.Fatalf("mergeEnv() = %v", merged)
	}

	for _, kv := range merged {
		key, value, _ := strings.Cut(kv, "=")
		if want[key] != value {
			t.Fatalf("mergeEnv() %s = %q, want %q", key, value, want[key])
		}
	}
}
