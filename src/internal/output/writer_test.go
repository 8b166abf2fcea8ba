package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
)

func networks(t *testing.T, inputs ...string) []ranges.Network {
	t.Helper()
	out := make([]ranges.Network, 0, len(inputs))
	for _, s := range inputs {
		n, err := ranges.ParseNetwork(s)
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", s, err)
		}
		out = append(out, n)
	}
	return out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}

func TestFileWriter_Write(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir, "", "", "")

	servers := networks(t, "10.0.0.1/32", "10.0.0.2/32")
	combined := networks(t, "10.0.0.0/24", "192.168.1.0/24")

	if err := w.Write(servers, combined); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if got := readFile(t, filepath.Join(dir, DefaultServersFile)); got != "10.0.0.1/32\n10.0.0.2/32" {
		t.Errorf("Unexpected servers file content: %q", got)
	}
	if got := readFile(t, filepath.Join(dir, DefaultCombinedFile)); got != "10.0.0.0/24\n192.168.1.0/24" {
		t.Errorf("Unexpected combined file content: %q", got)
	}
}

func TestFileWriter_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir, "servers.txt", "all.txt", "")

	if err := os.WriteFile(w.CombinedPath(), []byte("1.1.1.0/24\n2.2.2.0/24\n3.3.3.0/24\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if err := w.Write(networks(t, "10.0.0.1/32"), networks(t, "10.0.0.0/24")); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if got := readFile(t, w.CombinedPath()); got != "10.0.0.0/24" {
		t.Errorf("Expected file to be overwritten, got %q", got)
	}
	if got := readFile(t, w.ServersPath()); got != "10.0.0.1/32" {
		t.Errorf("Unexpected servers file content: %q", got)
	}
}

func TestFileWriter_SkipsUnchangedFile(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir, "", "", "")
	list := networks(t, "10.0.0.0/24")

	if err := w.Write(list, list); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	if err := os.Chtimes(w.ServersPath(), old, old); err != nil {
		t.Fatalf("Failed to change file times: %v", err)
	}

	if err := w.Write(list, list); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	info, err := os.Stat(w.ServersPath())
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if !info.ModTime().Equal(old) {
		t.Errorf("Expected unchanged file not to be rewritten, mtime moved to %v", info.ModTime())
	}
}

func TestFileWriter_EmptyLists(t *testing.T) {
	dir := t.TempDir()
	w := NewFileWriter(dir, "", "", "")

	if err := w.Write(nil, nil); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := readFile(t, w.ServersPath()); got != "" {
		t.Errorf("Expected empty file, got %q", got)
	}
}

func TestFileWriter_CheckDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	tests := []struct {
		name    string
		dir     string
		wantErr bool
	}{
		{"Existing directory", dir, false},
		{"Missing directory", filepath.Join(dir, "missing"), true},
		{"Regular file", file, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFileWriter(tt.dir, "", "", "").CheckDir()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Expected no error, got: %v", err)
				}
				return
			}
			if errors.CodeOf(err) != errors.ErrCodeConfig {
				t.Errorf("Expected config error, got %v", err)
			}
		})
	}
}

func TestFileWriter_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory where the servers file should be makes the write fail.
	if err := os.Mkdir(filepath.Join(dir, DefaultServersFile), 0755); err != nil {
		t.Fatalf("Failed to create blocking directory: %v", err)
	}

	err := NewFileWriter(dir, "", "", "").Write(networks(t, "10.0.0.1/32"), nil)
	if errors.CodeOf(err) != errors.ErrCodeWrite {
		t.Errorf("Expected write error, got %v", err)
	}
}

func TestRender_LineFormats(t *testing.T) {
	list := networks(t, "10.0.0.0/24", "192.168.1.7/32")

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{"Default", "", "10.0.0.0/24\n192.168.1.7/32"},
		{"CIDR", "{{cidr}}", "10.0.0.0/24\n192.168.1.7/32"},
		{"Netmask", "{{address}} {{netmask}}", "10.0.0.0 255.255.255.0\n192.168.1.7 255.255.255.255"},
		{"Firewall rule", "allow from {{address}}/{{prefix_len}};", "allow from 10.0.0.0/24;\nallow from 192.168.1.7/32;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := Render(list, tt.format)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if string(content) != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, content)
			}
		})
	}
}

func TestRender_InvalidFormat(t *testing.T) {
	_, err := Render(networks(t, "10.0.0.0/24"), "{{cidr")
	if errors.CodeOf(err) != errors.ErrCodeConfig {
		t.Errorf("Expected config error, got %v", err)
	}
}

func TestPrintWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewPrintWriter(&buf, "")

	if err := w.CheckDir(); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := w.Write(networks(t, "10.0.0.1/32"), networks(t, "10.0.0.0/24", "192.168.1.0/24")); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := "# servers (1)\n10.0.0.1/32\n# combined (2)\n10.0.0.0/24\n192.168.1.0/24\n"
	if buf.String() != expected {
		t.Errorf("Unexpected output:\n%q\nwant\n%q", buf.String(), expected)
	}
}
