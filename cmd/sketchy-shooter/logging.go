package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/sketchy-shooter/core"
)

const (
	logDir      = "logs"
	logFileName = "sketchy-shooter.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging points the standard and structured loggers at logs/ when debug is set
// The terminal is in raw mode, so nothing may go to stdout or stderr
// Returns the open file for the caller to close, or nil when logging is off
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		core.InitLog(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		core.InitLog(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		core.InitLog(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	core.InitLog(f).WithField("pid", os.Getpid()).Info("logging started")
	return f
}

// rotateLog renames an oversized log aside with a timestamp suffix
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	rotated := fmt.Sprintf("%s-%s.log", base, time.Now().Format("20060102-150405"))
	_ = os.Rename(path, rotated)
}
