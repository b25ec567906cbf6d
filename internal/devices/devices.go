// Package devices captures the devices.json document that tells the deployer
// which serial port and baud rate reach the board.
package devices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/thingssdk/thingssdk-cli/internal/prompt"
	"github.com/thingssdk/thingssdk-cli/internal/serialport"
)

// FileName is the document's name at the project root.
const FileName = "devices.json"

// Question names in the answer map.
const (
	QuestionPort = "port"
	QuestionBaud = "baud"
)

// Baud rate choices offered to the user.
var (
	BaudRates   = []string{"9600", "115200"}
	DefaultBaud = "115200"
)

// ErrCapture wraps any failure listing ports or collecting answers.
var ErrCapture = errors.New("capturing device configuration")

// Device is the connection settings for one board.
type Device struct {
	BaudRate int    `json:"baud_rate"`
	Runtime  string `json:"runtime"`
}

// Document is the devices.json content, keyed by port identifier.
type Document struct {
	Devices map[string]Device `json:"devices"`
}

// NewDocument returns a document holding exactly one device.
func NewDocument(port string, baud int, runtimeName string) *Document {
	return &Document{
		Devices: map[string]Device{
			port: {BaudRate: baud, Runtime: runtimeName},
		},
	}
}

// Builder turns detected ports and the user's answers into a Document.
type Builder struct {
	Lister   serialport.Lister
	Prompter prompt.Prompter
	Logger   *zap.Logger
}

// Questions returns the port and baud rate questions for the given ports.
// The first port is the default; with no ports there is no default.
func Questions(ports []string) []prompt.Question {
	portDefault := ""
	if len(ports) > 0 {
		portDefault = ports[0]
	}

	return []prompt.Question{
		{
			Name:    QuestionPort,
			Message: "Select a port:",
			Choices: ports,
			Default: portDefault,
		},
		{
			Name:    QuestionBaud,
			Message: "Select the baud rate:",
			Choices: BaudRates,
			Default: DefaultBaud,
		},
	}
}

// Build lists ports, asks the questions and assembles the document for
// runtimeName. Every failure is returned wrapped in ErrCapture; the caller
// decides whether it is fatal.
func (b *Builder) Build(ctx context.Context, runtimeName string) (*Document, error) {
	logger := b.logger()

	ports, err := b.Lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCapture, err)
	}
	if len(ports) == 0 {
		logger.Warn("no serial ports detected")
	}

	answers, err := b.Prompter.Ask(ctx, Questions(ports))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCapture, err)
	}

	port := answers[QuestionPort]
	baud, err := strconv.Atoi(answers[QuestionBaud])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid baud rate %q: %w", ErrCapture, answers[QuestionBaud], err)
	}

	logger.Debug("device selected",
		zap.String("port", port),
		zap.Int("baud_rate", baud),
		zap.String("runtime", runtimeName),
	)
	return NewDocument(port, baud, runtimeName), nil
}

func (b *Builder) logger() *zap.Logger {
	if b.Logger == nil {
		return zap.NewNop()
	}
	return b.Logger
}

// Read decodes a devices.json file.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &doc, nil
}
