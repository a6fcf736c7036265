package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logDir     = "logs"
	maxLogSize = 10 * 1024 * 1024
)

// Setup routes the standard logger to logs/<name> when debug is set and discards
// output otherwise; the terminal belongs to the game. A log file over 10MB is
// rotated aside with a timestamp suffix. Returns the open file or nil
func Setup(debug bool, name string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, name)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		rotated := filepath.Join(logDir, base+"."+time.Now().Format("20060102-150405")+".log")
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
