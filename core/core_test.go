package core

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

var osExit = os.Exit

func TestInitLogLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	l := InitLog(&buf)
	if l.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", l.GetLevel())
	}

	l.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("Expected debug message in output, got %q", buf.String())
	}
}

func TestInitLogInvalidLevelFallsBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	l := InitLog(&bytes.Buffer{})
	if l.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level fallback, got %v", l.GetLevel())
	}
}

func TestInitLogJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "JSON")

	var buf bytes.Buffer
	InitLog(&buf).WithField("wave", 3).Info("wave cleared")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "wave cleared" {
		t.Errorf("Expected msg 'wave cleared', got %v", entry["msg"])
	}
	if entry["wave"] != float64(3) {
		t.Errorf("Expected wave 3, got %v", entry["wave"])
	}
}

func TestHandleCrashRunsHookOnce(t *testing.T) {
	var code int
	exit = func(c int) { code = c }
	defer func() { exit = osExit }()
	InitLog(&bytes.Buffer{})

	calls := 0
	SetCrashHook(func() { calls++ })

	HandleCrash("boom")
	HandleCrash("again")

	if calls != 1 {
		t.Errorf("Expected hook to run once, got %d", calls)
	}
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
}

func TestHandleCrashNil(t *testing.T) {
	called := false
	exit = func(int) { called = true }
	defer func() { exit = osExit }()

	HandleCrash(nil)
	if called {
		t.Error("Expected nil recovery to be ignored")
	}
}

func TestGoRecovers(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	exit = func(int) { wg.Done() }
	defer func() { exit = osExit }()
	InitLog(&bytes.Buffer{})

	Go(func() { panic("worker") })
	wg.Wait()
}

func TestRecoverWrapsCallback(t *testing.T) {
	crashed := false
	exit = func(int) { crashed = true }
	defer func() { exit = osExit }()
	InitLog(&bytes.Buffer{})

	Recover(func() { panic("timer") })()
	if !crashed {
		t.Error("Expected wrapped panic to reach HandleCrash")
	}

	crashed = false
	ran := false
	Recover(func() { ran = true })()
	if !ran || crashed {
		t.Errorf("Expected clean callback to run without crash, ran=%v crashed=%v", ran, crashed)
	}
}
