package repo

import (
	"os"
	"strings"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	r := testRepo(t)

	cfg, err := r.ReadConfig()
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.Core.RepositoryFormatVersion != 0 || cfg.Core.Bare || cfg.Core.FileMode {
		t.Errorf("default config: %+v", cfg.Core)
	}

	cfg.Core.FileMode = true
	if err := r.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	back, err := r.ReadConfig()
	if err != nil {
		t.Fatalf("ReadConfig after write: %v", err)
	}
	if !back.Core.FileMode {
		t.Error("filemode change not persisted")
	}
}

func TestConfigMissingFileYieldsDefaults(t *testing.T) {
	r := testRepo(t)
	if err := os.Remove(r.configPath()); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	cfg, err := r.ReadConfig()
	if err != nil {
		t.Fatalf("ReadConfig: %v", err)
	}
	if cfg.Core.RepositoryFormatVersion != 0 {
		t.Errorf("default version: got %d", cfg.Core.RepositoryFormatVersion)
	}
}

func TestConfigFileHasCoreSection(t *testing.T) {
	r := testRepo(t)
	data, err := os.ReadFile(r.configPath())
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "[core]") {
		t.Errorf("config file missing [core] section:\n%s", data)
	}
	if !strings.Contains(string(data), "repositoryformatversion = 0") {
		t.Errorf("config file missing format version:\n%s", data)
	}
}
