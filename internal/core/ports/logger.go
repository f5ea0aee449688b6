package ports

import "go.trai.ch/vmb/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	SetLevel(level domain.LogLevel)
	SetJSON(enable bool)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
