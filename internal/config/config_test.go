package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "lcb.db" || cfg.DataDir != "data" || cfg.Files.Meteors != "meteor.csv" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Seed != nil {
		t.Error("default config is seeded")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		data    string
		wantErr bool
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "yaml",
			file: "lcb.yml",
			data: "output: out/solar.db\nseed: 42\nfiles:\n  moons: moons/gm.csv\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Output != "out/solar.db" {
					t.Errorf("Output = %q", cfg.Output)
				}
				if cfg.Seed == nil || *cfg.Seed != 42 {
					t.Errorf("Seed = %v, want 42", cfg.Seed)
				}
				if cfg.Files.Moons != "moons/gm.csv" || cfg.Files.Comets != "comet.csv" {
					t.Errorf("Files = %+v", cfg.Files)
				}
			},
		},
		{
			name: "json",
			file: "lcb.json",
			data: `{"data_dir": "csv", "verbose": true, "log_format": "json"}`,
			check: func(t *testing.T, cfg *Config) {
				if cfg.DataDir != "csv" || !cfg.Verbose || cfg.LogFormat != "json" {
					t.Errorf("cfg = %+v", cfg)
				}
				if cfg.Output != "lcb.db" {
					t.Errorf("Output = %q, want default", cfg.Output)
				}
			},
		},
		{name: "bad yaml", file: "bad.yaml", data: "output: [", wantErr: true},
		{name: "unsupported", file: "lcb.toml", data: "output = 'x'", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadFromFile(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, cfg)
		})
	}

	if _, err := LoadFromFile(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LCB_OUTPUT", "env.db")
	t.Setenv("LCB_VERBOSE", "1")
	t.Setenv("LCB_SEED", "7")
	t.Setenv("LCB_METEORS_FILE", "earth_meteors.csv")

	cfg := DefaultConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Output != "env.db" || !cfg.Verbose || cfg.Files.Meteors != "earth_meteors.csv" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Seed == nil || *cfg.Seed != 7 {
		t.Errorf("Seed = %v, want 7", cfg.Seed)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want untouched default", cfg.DataDir)
	}

	t.Setenv("LCB_SEED", "minus one")
	if err := LoadFromEnv(cfg); err == nil {
		t.Error("expected error for invalid LCB_SEED")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no output", mutate: func(c *Config) { c.Output = "" }},
		{name: "no data dir", mutate: func(c *Config) { c.DataDir = "" }},
		{name: "escaping source", mutate: func(c *Config) { c.Files.Moons = "../moon.csv" }},
		{name: "absolute source", mutate: func(c *Config) { c.Files.Comets = "/tmp/comet.csv" }},
		{name: "log format", mutate: func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Files.Moons = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty source name rejected: %v", err)
	}
}

func TestResolve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output = "out//solar.db"
	cfg.Files.Comets = "./comets/comet.csv"
	cfg.Resolve()

	if cfg.Output != filepath.Join("out", "solar.db") {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Files.Comets != "comets/comet.csv" {
		t.Errorf("Comets = %q", cfg.Files.Comets)
	}
}
