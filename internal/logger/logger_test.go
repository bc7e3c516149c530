package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{
			level:    "error",
			expected: []string{"ERROR"},
			excluded: []string{"WARN", "INFO", "DEBUG"},
		},
		{
			level:    "warn",
			expected: []string{"ERROR", "WARN"},
			excluded: []string{"INFO", "DEBUG"},
		},
		{
			level:    "info",
			expected: []string{"ERROR", "WARN", "INFO"},
			excluded: []string{"DEBUG"},
		},
		{
			level:    "debug",
			expected: []string{"ERROR", "WARN", "INFO", "DEBUG"},
			excluded: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(tempDir, tt.level+".log")

			rot := Rotation{
				Path:       logFile,
				MaxSizeMB:  10,
				MaxBackups: 1,
				MaxAgeDays: 1,
			}
			if err := InitWithRotation(tt.level, rot, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")

			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			logContent := string(content)

			for _, exp := range tt.expected {
				if !strings.Contains(logContent, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(logContent, exc) {
					t.Errorf("unexpected %s in log output for level %s", exc, tt.level)
				}
			}
		})
	}
}

func TestDefaultRotation(t *testing.T) {
	rot := DefaultRotation("/tmp/sceneview.log")

	if rot.Path != "/tmp/sceneview.log" {
		t.Errorf("expected path /tmp/sceneview.log, got %s", rot.Path)
	}
	if rot.MaxSizeMB != 20 {
		t.Errorf("expected MaxSizeMB 20, got %d", rot.MaxSizeMB)
	}
	if rot.MaxBackups != 3 {
		t.Errorf("expected MaxBackups 3, got %d", rot.MaxBackups)
	}
	if rot.MaxAgeDays != 14 {
		t.Errorf("expected MaxAgeDays 14, got %d", rot.MaxAgeDays)
	}
}

func TestInitWithoutFile(t *testing.T) {
	if err := InitWithRotation("info", Rotation{}, false); err != nil {
		t.Fatalf("init without file sink: %v", err)
	}
	// Must not panic with no cores attached.
	Info("no sinks attached")
	Sync()
}
