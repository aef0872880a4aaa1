package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AhmetBilalOzgun/nettrack/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:               ":8080",
		SheetID:            "sheet-id-123",
		SheetName:          "TYT",
		ExamType:           "TYT",
		TargetNet:          100,
		LogLevel:           "INFO",
		RefreshWorkerCount: 1,
		RefreshQueueSize:   8,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptySheetID(t *testing.T) {
	cfg := validConfig()
	cfg.SheetID = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SHEET_ID cannot be empty")
}

func TestValidate_InvalidExamType(t *testing.T) {
	tests := []struct {
		name     string
		examType string
	}{
		{
			name:     "unknown exam type",
			examType: "LGS",
		},
		{
			name:     "empty exam type",
			examType: "",
		},
		{
			name:     "lowercase exam type",
			examType: "tyt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.ExamType = tt.examType

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "EXAM_TYPE")
		})
	}
}

func TestValidate_ValidExamTypes(t *testing.T) {
	for _, examType := range []string{"TYT", "AYT"} {
		t.Run(examType, func(t *testing.T) {
			cfg := validConfig()
			cfg.ExamType = examType

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestValidate_InvalidWorkerCount(t *testing.T) {
	tests := []struct {
		name    string
		workers int
	}{
		{
			name:    "zero workers",
			workers: 0,
		},
		{
			name:    "negative workers",
			workers: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.RefreshWorkerCount = tt.workers

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "REFRESH_WORKER_COUNT")
		})
	}
}

func TestValidate_InvalidQueueSize(t *testing.T) {
	cfg := validConfig()
	cfg.RefreshQueueSize = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "REFRESH_QUEUE_SIZE")
}

func TestValidate_NegativeTargetNet(t *testing.T) {
	cfg := validConfig()
	cfg.TargetNet = -5

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TARGET_NET")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("SHEET_ID", "env-sheet")
	t.Setenv("EXAM_TYPE", "AYT")
	t.Setenv("SHEET_NAME", "")
	t.Setenv("TARGET_NET", "")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "env-sheet", cfg.SheetID)
	assert.Equal(t, "AYT", cfg.ExamType)
	// Sheet name falls back to the exam type, target to the exam default.
	assert.Equal(t, "AYT", cfg.SheetName)
	assert.Equal(t, float64(60), cfg.TargetNet)
}

func TestLoad_Defaults(t *testing.T) {
	// envOr treats empty values as unset.
	for _, key := range []string{"ADDR", "SHEET_ID", "SHEET_NAME", "EXAM_TYPE", "TARGET_NET", "LOG_LEVEL", "REFRESH_WORKER_COUNT", "REFRESH_QUEUE_SIZE"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "TYT", cfg.ExamType)
	assert.Equal(t, "TYT", cfg.SheetName)
	assert.Equal(t, float64(100), cfg.TargetNet)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 1, cfg.RefreshWorkerCount)
	assert.Equal(t, 8, cfg.RefreshQueueSize)
}
