package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gm.ini")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `[NIOS]
gm = 'gm.example.com'
api_version = 'v2.12'
valid_cert = 'true'
user = 'admin'
pass = "infoblox"
`)

	cfg, err := Load(path, testLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{
		GridMaster:   "gm.example.com",
		APIVersion:   "v2.12",
		Username:     "admin",
		Password:     "infoblox",
		ValidateCert: true,
	}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadValidCert(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		want     bool
	}{
		{
			name: "absent defaults to false",
			contents: `[NIOS]
gm = gm.example.com
api_version = v2.12
user = admin
pass = infoblox
`,
			want: false,
		},
		{
			name: "literal true enables validation",
			contents: `[NIOS]
valid_cert = true
`,
			want: true,
		},
		{
			name: "anything else stays disabled",
			contents: `[NIOS]
valid_cert = True
`,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.contents), testLogger())
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.ValidateCert != tt.want {
				t.Errorf("ValidateCert = %t, want %t", cfg.ValidateCert, tt.want)
			}
		})
	}
}

func TestLoadMissingKeysDefaultEmpty(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[NIOS]\ngm = gm.example.com\n"), testLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GridMaster != "gm.example.com" {
		t.Errorf("GridMaster = %q", cfg.GridMaster)
	}
	if cfg.APIVersion != "" || cfg.Username != "" || cfg.Password != "" {
		t.Errorf("missing keys should default to empty, got %+v", cfg)
	}
}

func TestLoadMissingSection(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[OTHER]\nkey = value\n"), testLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != (Config{}) {
		t.Fatalf("expected zero config without a NIOS section, got %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.ini"), testLogger()); err == nil {
		t.Fatal("expected error for unreadable config file")
	}
}

func TestLoadEnvOverridesCredentials(t *testing.T) {
	t.Setenv(EnvUser, "operator")
	t.Setenv(EnvPass, "hunter2")

	cfg, err := Load(writeConfig(t, `[NIOS]
gm = gm.example.com
api_version = v2.12
user = admin
pass = infoblox
`), testLogger())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Username != "operator" || cfg.Password != "hunter2" {
		t.Errorf("env overrides not applied, got user=%q pass=%q", cfg.Username, cfg.Password)
	}
}
