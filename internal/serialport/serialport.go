// Package serialport enumerates the host's serial ports.
package serialport

import (
	"context"
	"fmt"

	"go.bug.st/serial"
	"go.uber.org/zap"
)

// Lister returns the port identifiers available on the host, in the order the
// operating system reports them. An empty list is not an error.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// SystemLister lists ports through go.bug.st/serial.
type SystemLister struct {
	logger *zap.Logger
	list   func() ([]string, error)
}

// NewSystemLister returns a Lister backed by the host's serial driver.
func NewSystemLister(logger *zap.Logger) *SystemLister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemLister{
		logger: logger.With(zap.String("component", "serialport")),
		list:   serial.GetPortsList,
	}
}

// List implements Lister.
func (l *SystemLister) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ports, err := l.list()
	if err != nil {
		return nil, fmt.Errorf("listing serial ports: %w", err)
	}
	if ports == nil {
		ports = []string{}
	}

	l.logger.Debug("serial ports listed", zap.Strings("ports", ports))
	return ports, nil
}

// StaticLister returns a fixed port list. The --port flag uses it to skip
// hardware detection.
type StaticLister []string

// List implements Lister.
func (s StaticLister) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(s))
	copy(out, s)
	return out, nil
}
