package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "career-match")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("DB_NAME", "career")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "career-match", cfg.App.AppName)
	assert.Equal(t, "migrations", cfg.App.MigrationsDir)
	assert.Equal(t, "localhost", cfg.Database.DBHost)
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessExpiresIn)
	assert.Equal(t, "jd_analysis", cfg.Queue.AnalysisQueue)
	assert.Equal(t, 4, cfg.Analysis.CourseLimit)
}

func TestLoadMissingRequired(t *testing.T) {
	for _, k := range []string{"APP_NAME", "APP_ENV", "HTTP_PORT", "DB_NAME", "DATABASE_URL", "JWT_ACCESS_SECRET"} {
		t.Setenv(k, "")
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestLoadInvalidNumber(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ANALYSIS_COURSE_LIMIT", "four")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.True(t, errors.Is(err, errInvalidEnv))
}

func TestLoadDotEnvFile(t *testing.T) {
	setBaseEnv(t)
	for _, k := range []string{"ANALYSIS_QUEUE", "REDIS_TTL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ANALYSIS_QUEUE=jd_from_file\nREDIS_TTL=30s\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "jd_from_file", cfg.Queue.AnalysisQueue)
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
}
