// Package ports defines the core interfaces for the application.
package ports

// Logger defines the interface for user-facing status and error output.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
