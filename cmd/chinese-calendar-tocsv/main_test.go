package main

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diggr909-droid/chinese-calendar-tocsv/internal/almanac"
	"github.com/diggr909-droid/chinese-calendar-tocsv/internal/export"
)

func TestRootCmd_SingleErrorReport(t *testing.T) {
	cmd := newRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"generate", "--start", "2025/01/01", "--end", "2025-01-03"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() error = nil, want a validation failure")
	}

	var formatErr *almanac.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("Execute() error = %v, want *almanac.FormatError", err)
	}

	// main prints the one ❌ line itself; cobra must stay quiet so the
	// failure is not reported twice
	if s := errOut.String(); strings.Contains(s, "Error:") {
		t.Errorf("cobra error output not silenced: %q", s)
	}
	if s := errOut.String(); strings.Contains(s, "Usage:") {
		t.Errorf("usage dumped on a runtime failure: %q", s)
	}
}

func TestGenerateCmd_WritesFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "nested", "out.csv")

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"generate",
		"--start", "2025-01-01",
		"--end", "2025-01-03",
		"-o", outPath,
		"--no-progress",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\xEF\xBB\xBF")) {
		t.Error("output does not start with a UTF-8 BOM")
	}

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF"))))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("row count = %d, want header + 3 data rows", len(rows))
	}
	if rows[0][0] != export.Header[0] {
		t.Errorf("header starts with %q, want %q", rows[0][0], export.Header[0])
	}
	if rows[1][0] != "2025-01-01" {
		t.Errorf("first data row date = %q, want 2025-01-01", rows[1][0])
	}
	if rows[1][6] != "周三" {
		t.Errorf("first data row weekday = %q, want 周三", rows[1][6])
	}
	if rows[3][0] != "2025-01-03" {
		t.Errorf("last data row date = %q, want 2025-01-03", rows[3][0])
	}
}
