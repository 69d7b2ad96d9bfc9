package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %s", err.Error())
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %s", err.Error())
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

var envKeys = []string{
	"ADDR", "PORT", "MONGO_URL", "MONGO_DB", "MONGO_CONNECT_TIMEOUT",
	"STORE_BACKEND", "SEED_FILE", "LOG_LEVEL", "APP_NAME",
}

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	v, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	exp := Variables{
		Port:           8000,
		MongoURL:       "mongodb://localhost:27017",
		MongoDB:        "media_catalog",
		ConnectTimeout: 10 * time.Second,
		StoreBackend:   BackendMongo,
		LogLevel:       "info",
		AppName:        "media-catalog",
	}
	if !cmp.Equal(v, exp) {
		t.Fatalf("unexpected variables: %s", cmp.Diff(exp, v))
	}
	if v.ListenAddr() != ":8000" {
		t.Fatalf("unexpected listen addr: %s", v.ListenAddr())
	}
}

func TestLoadValidation(t *testing.T) {
	table := []struct {
		label  string
		env    map[string]string
		expErr bool
	}{
		{label: "should require a mongo url", env: map[string]string{}, expErr: true},
		{label: "should allow memory without a url", env: map[string]string{"STORE_BACKEND": "memory"}},
		{label: "should reject an unknown backend", env: map[string]string{"STORE_BACKEND": "redis"}, expErr: true},
		{label: "should reject a bad port", env: map[string]string{"STORE_BACKEND": "memory", "PORT": "0"}, expErr: true},
	}
	for i := 0; i < len(table); i++ {
		ts := table[i]
		t.Run(ts.label, func(t *testing.T) {
			chdirTemp(t)
			clearEnv(t)
			for k, val := range ts.env {
				t.Setenv(k, val)
			}
			_, err := Load()
			if (err != nil) != ts.expErr {
				t.Fatalf("unexpected error result: %v", err)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	chdirTemp(t)
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "memory")
	if err := os.WriteFile(filepath.Join(".", ".env"), []byte("PORT=9090\nADDR=127.0.0.1:9191\n"), 0o600); err != nil {
		t.Fatalf("write .env: %s", err.Error())
	}

	v, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if v.Port != 9090 || v.ListenAddr() != "127.0.0.1:9191" {
		t.Fatalf("unexpected variables: %+v", v)
	}
}
