package commands

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/maksimkurb/ip-ranges/src/internal/config"
	"github.com/maksimkurb/ip-ranges/src/internal/errors"
	"github.com/maksimkurb/ip-ranges/src/internal/output"
	"github.com/maksimkurb/ip-ranges/src/internal/ranges"
	"github.com/maksimkurb/ip-ranges/src/internal/resolver"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ip-ranges.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadAndValidateConfigOrFail(t *testing.T) {
	cfg, err := loadAndValidateConfigOrFail("")
	if err != nil {
		t.Fatalf("Expected defaults to validate, got: %v", err)
	}
	if len(cfg.Resolver.Hosts) != 2 {
		t.Errorf("Expected 2 default hosts, got %d", len(cfg.Resolver.Hosts))
	}

	path := writeConfig(t, "[provider]\ntimeout_seconds = -1\n")
	if _, err := loadAndValidateConfigOrFail(path); errors.CodeOf(err) != errors.ErrCodeValidation {
		t.Errorf("Expected VALIDATION_ERROR, got %v", err)
	}

	if _, err := loadAndValidateConfigOrFail(filepath.Join(t.TempDir(), "missing.toml")); errors.CodeOf(err) != errors.ErrCodeConfig {
		t.Errorf("Expected CONFIG_ERROR, got %v", err)
	}
}

func TestNewResolver(t *testing.T) {
	cfg := config.DefaultConfig()
	res, err := newResolver(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, ok := res.(*resolver.System); !ok {
		t.Errorf("Expected system resolver, got %T", res)
	}

	cfg.Resolver.Upstream = "udp://127.0.0.1:5353"
	res, err = newResolver(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if upstream, ok := res.(*resolver.Upstream); !ok {
		t.Errorf("Expected upstream resolver, got %T", res)
	} else if upstream.Address() != "127.0.0.1:5353" {
		t.Errorf("Unexpected upstream address %s", upstream.Address())
	}
}

func TestGenerateCommand_Init(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.OutputPathEnv, dir)

	cmd := CreateGenerateCommand()
	if cmd.Name() != "generate" {
		t.Errorf("Unexpected name %s", cmd.Name())
	}
	if err := cmd.Init(nil, &AppContext{}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	writer, ok := cmd.deps.Writer.(*output.FileWriter)
	if !ok {
		t.Fatalf("Expected file writer, got %T", cmd.deps.Writer)
	}
	if writer.Dir != dir {
		t.Errorf("Expected output dir %s, got %s", dir, writer.Dir)
	}

	dryRun := CreateGenerateCommand()
	if err := dryRun.Init([]string{"-dry-run"}, &AppContext{}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if _, ok := dryRun.deps.Writer.(*output.PrintWriter); !ok {
		t.Errorf("Expected print writer, got %T", dryRun.deps.Writer)
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.OutputPathEnv, dir)
	if err := os.WriteFile(filepath.Join(dir, output.DefaultCombinedFile), []byte("10.0.0.0/24\n192.168.1.0/24"), 0644); err != nil {
		t.Fatalf("Failed to write list: %v", err)
	}

	tests := []struct {
		name    string
		args    []string
		initErr bool
		runErr  bool
	}{
		{name: "covered", args: []string{"10.0.0.7", "192.168.1.1"}},
		{name: "not covered", args: []string{"10.0.1.1"}, runErr: true},
		{name: "IPv4-mapped target", args: []string{"::ffff:10.0.0.7"}, runErr: true},
		{name: "missing servers list", args: []string{"-list", "servers", "10.0.0.7"}, runErr: true},
		{name: "unknown list", args: []string{"-list", "other", "10.0.0.7"}, initErr: true},
		{name: "no targets", args: nil, initErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := CreateCheckCommand()
			err := cmd.Init(tt.args, &AppContext{})
			if (err != nil) != tt.initErr {
				t.Fatalf("Init() error = %v, wantErr %v", err, tt.initErr)
			}
			if err != nil {
				return
			}
			if err := cmd.Run(); (err != nil) != tt.runErr {
				t.Errorf("Run() error = %v, wantErr %v", err, tt.runErr)
			}
		})
	}
}

func TestCheckCommand_CustomLineFormat(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.OutputPathEnv, dir)

	format := "{{address}} {{netmask}}"
	writer := output.NewFileWriter(dir, "", "", format)
	written := []ranges.Network{ranges.MustParseNetwork("10.0.0.0/24")}
	if err := writer.Write(written, written); err != nil {
		t.Fatalf("Failed to write lists: %v", err)
	}

	path := writeConfig(t, fmt.Sprintf("[output]\nline_format = %q\n", format))
	cmd := CreateCheckCommand()
	if err := cmd.Init([]string{"10.0.0.5", "10.0.0.255"}, &AppContext{ConfigPath: path}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Errorf("Expected addresses inside 10.0.0.0/24 to be covered, got: %v", err)
	}
}

func TestServicesCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prefixes": [
			{"ip_prefix": "10.0.0.0/24", "region": "us-east-1", "service": "S3", "network_border_group": "us-east-1"},
			{"ip_prefix": "10.0.1.0/24", "region": "eu-west-1", "service": "S3", "network_border_group": "eu-west-1"}
		]}`))
	}))
	defer server.Close()

	path := writeConfig(t, fmt.Sprintf("[provider]\nurl = %q\n", server.URL))
	cmd := CreateServicesCommand()
	if err := cmd.Init([]string{"-selected"}, &AppContext{ConfigPath: path}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

func TestPrintConfigCommand(t *testing.T) {
	cmd := CreatePrintConfigCommand()
	if err := cmd.Init(nil, &AppContext{}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}
