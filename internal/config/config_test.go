package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "riot.yaml")
	if err := ioutil.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "")
	t.Setenv("RIOT_REGION", "")
	t.Setenv("LOG_LEVEL", "")

	path := writeConfig(t, `
api_key: from-file
region: EUW
timeout: 3s
log_level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "from-file" || cfg.Region != "EUW" || cfg.Timeout != 3*time.Second {
		t.Fatalf("Unexpected config %+v", cfg)
	}
	if cfg.DocsURL != DefaultDocsURL {
		t.Fatalf("Expected default docs url, got %s", cfg.DocsURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Logger().GetLevel() != logrus.DebugLevel {
		t.Fatalf("Expected debug level, got %v", cfg.Logger().GetLevel())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "from-env")
	t.Setenv("RIOT_REGION", "KR")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "api_key: from-file\nregion: EUW\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "from-env" || cfg.Region != "KR" || cfg.LogLevel != "warn" {
		t.Fatalf("Unexpected config %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	datas := []struct {
		cfg Config
		ok  bool
	}{
		{Config{APIKey: "k", Region: "NA", LogLevel: "info", Timeout: time.Second}, true},
		{Config{Region: "NA", LogLevel: "info", Timeout: time.Second}, false},
		{Config{APIKey: "k", Region: "na", LogLevel: "info", Timeout: time.Second}, false},
		{Config{APIKey: "k", Region: "NA", LogLevel: "loud", Timeout: time.Second}, false},
		{Config{APIKey: "k", Region: "NA", LogLevel: "info"}, false},
		{Config{APIKey: "k", Region: "NA", LogLevel: "info", Timeout: 10}, false},
		{Config{APIKey: "k", Region: "NA", LogLevel: "info", Timeout: -time.Second}, false},
		{Config{APIKey: "k", Region: "NA", LogLevel: "info", BaseURL: "http://127.0.0.1:8080", Timeout: time.Second}, true},
		{Config{APIKey: "k", Region: "NA", LogLevel: "info", BaseURL: "https://{region.example", Timeout: time.Second}, false},
		{Config{APIKey: "k", Region: "NA", LogLevel: "info", BaseURL: "/relative", Timeout: time.Second}, false},
	}

	for i, d := range datas {
		err := d.cfg.Validate()
		if (err == nil) != d.ok {
			t.Fatalf("#%d: Validate() = %v, expected ok=%v", i, err, d.ok)
		}
	}
}

func TestBareTimeout(t *testing.T) {
	t.Setenv("RIOT_API_KEY", "k")
	t.Setenv("RIOT_REGION", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load(writeConfig(t, "timeout: 10\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Timeout != 10 {
		t.Fatalf("Expected 10ns, got %v", cfg.Timeout)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected an error for a timeout without unit")
	}
	if _, err := cfg.NewClient(cfg.Logger()); err == nil {
		t.Fatal("NewClient must validate the timeout")
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
	if _, err := Load(writeConfig(t, "api_key: [")); err == nil {
		t.Fatal("Expected an error for bad yaml")
	}
}

func TestNewClient(t *testing.T) {
	cfg := &Config{APIKey: "k", Region: "TR", LogLevel: "info", BaseURL: "http://127.0.0.1:1", Timeout: time.Second}
	client, err := cfg.NewClient(cfg.Logger())
	if err != nil {
		t.Fatal(err)
	}
	if client.Region() != "TR" {
		t.Fatalf("Unexpected region %s", client.Region())
	}

	cfg.APIKey = ""
	if _, err := cfg.NewClient(cfg.Logger()); err == nil {
		t.Fatal("Expected an error without api key")
	}
}
