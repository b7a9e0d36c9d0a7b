package config

import (
	"os"
	"testing"
	"time"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	})
}

func requiredEnv() map[string]string {
	return map[string]string{
		"MARIADB_DSN":               "user:pass@tcp(localhost:3306)/db",
		"MARIADB_MAX_OPEN_CONN":     "10",
		"MARIADB_MAX_IDLE_CONNS":    "5",
		"MARIADB_CONN_MAX_LIFETIME": "30",
		"SERVER_PORT":               "8080",
		"MINIO_ENDPOINT":            "localhost:9000",
		"MINIO_ACCESS_KEY":          "minio",
		"MINIO_SECRET_KEY":          "minio123",
	}
}

func TestLoad_Success(t *testing.T) {
	chdirTemp(t)
	reqs := requiredEnv()
	for k, v := range reqs {
		t.Setenv(k, v)
	}
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.MariaDBDSN != reqs["MARIADB_DSN"] {
		t.Errorf("MariaDBDSN: expected %q, got %q", reqs["MARIADB_DSN"], cfg.MariaDBDSN)
	}
	if cfg.MaxOpenConns != 10 {
		t.Errorf("MaxOpenConns: expected %d, got %d", 10, cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime != 30*time.Second {
		t.Errorf("ConnMaxLifetime: expected %v, got %v", 30*time.Second, cfg.ConnMaxLifetime)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: expected %d, got %d", 8080, cfg.ServerPort)
	}
	if cfg.MinioEndpoint != reqs["MINIO_ENDPOINT"] {
		t.Errorf("MinioEndpoint: expected %q, got %q", reqs["MINIO_ENDPOINT"], cfg.MinioEndpoint)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr: expected %q, got %q", "localhost:6379", cfg.RedisAddr)
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	for k, v := range requiredEnv() {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.MediaBucket != "kitchen-media" {
		t.Errorf("MediaBucket: expected %q, got %q", "kitchen-media", cfg.MediaBucket)
	}
	if cfg.QueuePrimary != "media:process" {
		t.Errorf("QueuePrimary: expected %q, got %q", "media:process", cfg.QueuePrimary)
	}
	if cfg.QueueDead != "media:dead" {
		t.Errorf("QueueDead: expected %q, got %q", "media:dead", cfg.QueueDead)
	}
	if cfg.RetryCeiling != 3 {
		t.Errorf("RetryCeiling: expected %d, got %d", 3, cfg.RetryCeiling)
	}
	if cfg.RetryDelay != 30*time.Second {
		t.Errorf("RetryDelay: expected %v, got %v", 30*time.Second, cfg.RetryDelay)
	}
	if cfg.FFmpegBin != "ffmpeg" {
		t.Errorf("FFmpegBin: expected %q, got %q", "ffmpeg", cfg.FFmpegBin)
	}
	if cfg.MaxImageWidth != 800 {
		t.Errorf("MaxImageWidth: expected %d, got %d", 800, cfg.MaxImageWidth)
	}
	if cfg.JPEGQuality != 80 {
		t.Errorf("JPEGQuality: expected %d, got %d", 80, cfg.JPEGQuality)
	}
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	cases := []struct {
		missingKey string
		wantErr    string
	}{
		{"MARIADB_DSN", "MARIADB_DSN is required"},
		{"MARIADB_MAX_OPEN_CONN", "MARIADB_MAX_OPEN_CONN is required"},
		{"MARIADB_MAX_IDLE_CONNS", "MARIADB_MAX_IDLE_CONNS is required"},
		{"MARIADB_CONN_MAX_LIFETIME", "MARIADB_CONN_MAX_LIFETIME is required"},
		{"SERVER_PORT", "SERVER_PORT is required"},
		{"MINIO_ENDPOINT", "MINIO_ENDPOINT is required"},
		{"MINIO_ACCESS_KEY", "MINIO_ACCESS_KEY is required"},
		{"MINIO_SECRET_KEY", "MINIO_SECRET_KEY is required"},
	}

	for _, tc := range cases {
		t.Run(tc.missingKey, func(t *testing.T) {
			chdirTemp(t)
			for k, v := range requiredEnv() {
				if k == tc.missingKey {
					if err := os.Unsetenv(k); err != nil {
						t.Fatalf("could not unset key %s in env: %v", k, err)
					}
				} else {
					t.Setenv(k, v)
				}
			}

			cfg, err := Load()
			if err == nil {
				t.Fatalf("expected error for missing %s, got nil", tc.missingKey)
			}
			if err.Error() != tc.wantErr {
				t.Errorf("error = %q; want %q", err.Error(), tc.wantErr)
			}
			if cfg != nil {
				t.Errorf("expected cfg nil on error, got %#v", cfg)
			}
		})
	}
}
