package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerate_WritesMatrix(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, "--output-dir", dir)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if got := strings.Count(out, "\n"); got != 162 {
		t.Errorf("expected 162 progress lines, got %d", got)
	}
	if !strings.HasPrefix(out, "generate init.conf and run.conf (Dir=./500m/COS/FDM_CD2/)\n") {
		t.Errorf("unexpected first progress line: %q", strings.SplitN(out, "\n", 2)[0])
	}

	data, err := os.ReadFile(filepath.Join(dir, "250m_fctori", "COS", "FDM_UD1", "run.conf"))
	if err != nil {
		t.Fatalf("read run.conf: %v", err)
	}
	if !strings.Contains(string(data), " USER_FLAG_FCT = T, \n") {
		t.Errorf("expected USER_FLAG_FCT = T in fctori run.conf")
	}
	if !strings.Contains(string(data), " ATMOS_DYN_FLAG_FCT_ALONG_STREAM = F,\n") {
		t.Errorf("expected along-stream FCT off in fctori run.conf")
	}
}

func TestGenerate_DryRun(t *testing.T) {
	dir := t.TempDir()

	out, _, err := runCLI(t, "-o", dir, "--dry-run", "--workers", "4")
	if err != nil {
		t.Fatalf("dry-run error: %v", err)
	}
	if got := strings.Count(out, "[dry-run] generate"); got != 162 {
		t.Errorf("expected 162 dry-run lines, got %d", got)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("dry-run wrote %d entries", len(entries))
	}
}

func TestGenerate_JSONLogs(t *testing.T) {
	_, errOut, err := runCLI(t, "-o", t.TempDir(), "--log-format", "json")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if !strings.Contains(errOut, `"msg":"generation finished"`) {
		t.Errorf("expected JSON completion log on stderr, got: %s", errOut)
	}
	if !strings.Contains(errOut, `"run_id":`) {
		t.Errorf("expected run_id attribute, got: %s", errOut)
	}
}

func TestGenerate_UnwritableRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(root, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, "-o", root)
	if err == nil {
		t.Fatal("expected error when output root is a file")
	}
	if !strings.Contains(err.Error(), "mkdir") {
		t.Errorf("expected mkdir error, got: %v", err)
	}
}

func TestGenerate_KeepGoingCountsFailures(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(root, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, "-o", root, "--keep-going")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "162 of 162 variants failed") {
		t.Errorf("expected failure count in error, got: %v", err)
	}
}

func TestGenerate_RejectsArgs(t *testing.T) {
	if _, _, err := runCLI(t, "extra"); err == nil {
		t.Error("expected error for positional argument")
	}
}

func TestInvalidLogFlags(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--log-level", "loud", "list"}, "invalid log level"},
		{[]string{"--log-format", "xml", "list"}, "invalid log format"},
	}
	for _, tt := range tests {
		_, _, err := runCLI(t, tt.args...)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("args %v: expected %q error, got %v", tt.args, tt.want, err)
		}
	}
}

func TestTablesCommand(t *testing.T) {
	out, _, err := runCLI(t, "tables")
	if err != nil {
		t.Fatalf("tables error: %v", err)
	}
	for _, want := range []string{"resolution:", "case:", "numeric:", "TAG: 250m_fctori", "SHAPE_NC: BUBBLE", "TAG: FDM_UD5"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in tables output, got:\n%s", want, out)
		}
	}
}

func TestListCommand(t *testing.T) {
	out, _, err := runCLI(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if !strings.Contains(out, "162 variants") {
		t.Errorf("expected variant count, got:\n%s", out)
	}

	lines := strings.Split(out, "\n")
	var fctori string
	for _, l := range lines {
		if strings.HasPrefix(l, "250m_fctori/RECT/FDM_CD6/") {
			fctori = l
		}
	}
	if fields := strings.Fields(fctori); len(fields) != 3 || fields[1] != "T" || fields[2] != "F" {
		t.Errorf("unexpected fctori row: %q", fctori)
	}
}
