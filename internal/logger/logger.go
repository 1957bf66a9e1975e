package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Lutefd/currency-widget/internal/model"
	"github.com/Lutefd/currency-widget/internal/repository"
	"github.com/google/uuid"
)

var (
	InfoLogger       *log.Logger
	ErrorLogger      *log.Logger
	logChan          chan model.Log
	logDrained       chan struct{}
	logRepo          repository.LogRepository
	sinkMu           sync.RWMutex
	loggerBufferSize = 1000
)

func init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// InitLogger starts shipping entries to repo. Without it, entries only go to
// the standard loggers.
func InitLogger(repo repository.LogRepository) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	logRepo = repo
	logChan = make(chan model.Log, loggerBufferSize)
	logDrained = make(chan struct{})
	go processLogs(logChan, logDrained, repo)
}

func processLogs(entries <-chan model.Log, drained chan<- struct{}, repo repository.LogRepository) {
	defer close(drained)
	for logEntry := range entries {
		if err := repo.SaveLog(context.Background(), logEntry); err != nil {
			ErrorLogger.Printf("failed to save log: %v", err)
		}
	}
}

func logAsync(level model.LogLevel, source, message string) {
	logEntry := model.Log{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		Timestamp: time.Now(),
		Source:    source,
	}

	sinkMu.RLock()
	if logChan != nil {
		select {
		case logChan <- logEntry:
		default:
			ErrorLogger.Printf("log channel full. Dropping log: %v", logEntry)
		}
	}
	sinkMu.RUnlock()

	if level == model.LogLevelInfo {
		InfoLogger.Output(3, message)
	} else {
		ErrorLogger.Output(3, message)
	}
}

func Info(source string, v ...interface{}) {
	logAsync(model.LogLevelInfo, source, fmt.Sprint(v...))
}

func Infof(source, format string, v ...interface{}) {
	logAsync(model.LogLevelInfo, source, fmt.Sprintf(format, v...))
}

func Error(source string, v ...interface{}) {
	logAsync(model.LogLevelError, source, fmt.Sprint(v...))
}

func Errorf(source, format string, v ...interface{}) {
	logAsync(model.LogLevelError, source, fmt.Sprintf(format, v...))
}

// Shutdown stops accepting entries, waits for the queue to drain and closes
// the repository.
func Shutdown(ctx context.Context) error {
	sinkMu.Lock()
	entries, drained, repo := logChan, logDrained, logRepo
	logChan, logDrained, logRepo = nil, nil, nil
	sinkMu.Unlock()

	if entries == nil {
		return nil
	}
	close(entries)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-drained:
		return repo.Close()
	}
}
