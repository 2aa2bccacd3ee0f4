package main

import (
	"errors"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"memorypuzzle/internal/board"
	"memorypuzzle/internal/config"
)

func TestNewLogger(t *testing.T) {
	if got := newLogger(false).GetLevel(); got != logrus.InfoLevel {
		t.Errorf("level = %v, want info", got)
	}
	log := newLogger(true)
	if got := log.GetLevel(); got != logrus.DebugLevel {
		t.Errorf("debug level = %v, want debug", got)
	}
	if log.Out != os.Stderr {
		t.Error("logger does not write to stderr")
	}
}

func TestSeedFrom(t *testing.T) {
	if got := seedFrom(42); got != 42 {
		t.Errorf("seedFrom(42) = %d", got)
	}
	if seedFrom(0) == 0 {
		t.Error("seedFrom(0) returned zero")
	}
}

func TestRunRejectsShortIconPool(t *testing.T) {
	cfg := config.Default()
	cfg.AssetDir = t.TempDir()
	cfg.Mute = true
	log, _ := logtest.NewNullLogger()

	if err := run(cfg, log); !errors.Is(err, board.ErrPoolExhausted) {
		t.Fatalf("run with empty asset dir: err = %v, want ErrPoolExhausted", err)
	}
}
