package model

import (
	"time"

	"github.com/google/uuid"
)

type LogLevel string

const (
	LogLevelInfo  LogLevel = "INFO"
	LogLevelError LogLevel = "ERROR"
)

const (
	LogSourceWidget  = "widget"
	LogSourceCatalog = "catalog"
	LogSourceStorage = "storage"
	LogSourceHTTP    = "http"
)

// Log is a diagnostic entry shipped to the log repository.
type Log struct {
	ID        uuid.UUID `json:"id"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}
