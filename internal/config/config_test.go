package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	got, err := FromEnv(env(nil))
	if err != nil {
		t.Fatalf("FromEnv() unexpected error: %v", err)
	}
	if got != Default() {
		t.Errorf("FromEnv() = %+v, want %+v", got, Default())
	}
}

func TestFromEnv(t *testing.T) {
	got, err := FromEnv(env(map[string]string{
		EnvStore:         "postgres",
		EnvDBHost:        "db",
		EnvDBPort:        "5432",
		EnvRedisAddr:     "cache:6379",
		EnvRedisDB:       "2",
		EnvCacheTTL:      "90s",
		EnvCurrency:      "GBP",
		EnvServerAddr:    ":9000",
		EnvLogFormat:     "json",
		EnvRedisPassword: "secret",
	}))
	if err != nil {
		t.Fatalf("FromEnv() unexpected error: %v", err)
	}
	if got.Store != StorePostgres || got.DB.Host != "db" || got.DB.Port != "5432" {
		t.Errorf("unexpected store settings: %+v", got)
	}
	if got.RedisAddr != "cache:6379" || got.RedisDB != 2 || got.RedisPassword != "secret" {
		t.Errorf("unexpected redis settings: %+v", got)
	}
	if got.CacheTTL != 90*time.Second {
		t.Errorf("CacheTTL = %v, want 90s", got.CacheTTL)
	}
	if got.Currency != "GBP" || got.ServerAddr != ":9000" || got.LogFormat != "json" {
		t.Errorf("unexpected settings: %+v", got)
	}
	if got.LedgerPath != Default().LedgerPath {
		t.Errorf("LedgerPath = %q, want the default", got.LedgerPath)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	_, err := FromEnv(env(map[string]string{
		EnvStore:    "sqlite",
		EnvRedisDB:  "one",
		EnvCacheTTL: "soon",
	}))
	if err == nil {
		t.Fatal("FromEnv() expected an error, got nil")
	}
	for _, want := range []string{EnvStore, EnvRedisDB, EnvCacheTTL} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("RESALE_LEDGER_PATH=from-file.jsonl\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLedgerPath, "")
	os.Unsetenv(EnvLedgerPath)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got.LedgerPath != "from-file.jsonl" {
		t.Errorf("LedgerPath = %q, want from-file.jsonl", got.LedgerPath)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Load() of a missing file: unexpected error %v", err)
	}
}
