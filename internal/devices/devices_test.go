package devices

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thingssdk/thingssdk-cli/internal/manifest"
	"github.com/thingssdk/thingssdk-cli/internal/prompt"
	"github.com/thingssdk/thingssdk-cli/internal/serialport"
)

type failingLister struct{ err error }

func (f failingLister) List(context.Context) ([]string, error) { return nil, f.err }

func TestQuestions(t *testing.T) {
	qs := Questions([]string{"/dev/ttyUSB0", "/dev/ttyUSB1"})
	require.Len(t, qs, 2)

	assert.Equal(t, QuestionPort, qs[0].Name)
	assert.Equal(t, []string{"/dev/ttyUSB0", "/dev/ttyUSB1"}, qs[0].Choices)
	assert.Equal(t, "/dev/ttyUSB0", qs[0].Default)

	assert.Equal(t, QuestionBaud, qs[1].Name)
	assert.Equal(t, []string{"9600", "115200"}, qs[1].Choices)
	assert.Equal(t, "115200", qs[1].Default)
}

func TestQuestionsNoPorts(t *testing.T) {
	qs := Questions(nil)
	assert.Empty(t, qs[0].Choices)
	assert.Equal(t, "", qs[0].Default)
}

func TestBuild_SelectedAnswers(t *testing.T) {
	b := &Builder{
		Lister:   serialport.StaticLister{"/dev/ttyUSB0"},
		Prompter: &prompt.Scripted{Answers: map[string]string{"port": "/dev/ttyUSB0", "baud": "115200"}},
		Logger:   zap.NewNop(),
	}

	doc, err := b.Build(context.Background(), "espruino")
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"devices":{"/dev/ttyUSB0":{"baud_rate":115200,"runtime":"espruino"}}}`, string(data))
}

func TestBuild_DefaultsAccepted(t *testing.T) {
	b := &Builder{
		Lister:   serialport.StaticLister{"COM4", "COM7"},
		Prompter: &prompt.Scripted{},
	}

	doc, err := b.Build(context.Background(), "espruino")
	require.NoError(t, err)
	require.Len(t, doc.Devices, 1)
	assert.Equal(t, Device{BaudRate: 115200, Runtime: "espruino"}, doc.Devices["COM4"])
}

func TestBuild_NoPortsLiteralAnswer(t *testing.T) {
	b := &Builder{
		Lister:   serialport.StaticLister{},
		Prompter: &prompt.Scripted{Answers: map[string]string{"port": "/dev/cu.usbserial", "baud": "9600"}},
	}

	doc, err := b.Build(context.Background(), "espruino")
	require.NoError(t, err)
	assert.Equal(t, Device{BaudRate: 9600, Runtime: "espruino"}, doc.Devices["/dev/cu.usbserial"])
}

func TestBuild_NoPortsNoAnswer(t *testing.T) {
	b := &Builder{
		Lister:   serialport.StaticLister{},
		Prompter: &prompt.Scripted{},
	}

	_, err := b.Build(context.Background(), "espruino")
	assert.ErrorIs(t, err, ErrCapture)
}

func TestBuild_ListerError(t *testing.T) {
	cause := errors.New("permission denied")
	b := &Builder{
		Lister:   failingLister{err: cause},
		Prompter: &prompt.Scripted{},
	}

	_, err := b.Build(context.Background(), "espruino")
	assert.ErrorIs(t, err, ErrCapture)
	assert.ErrorIs(t, err, cause)
}

func TestBuild_InvalidBaud(t *testing.T) {
	b := &Builder{
		Lister:   serialport.StaticLister{"COM3"},
		Prompter: &prompt.Scripted{Answers: map[string]string{"baud": "fast"}},
	}

	_, err := b.Build(context.Background(), "espruino")
	assert.ErrorIs(t, err, ErrCapture)
	assert.Contains(t, err.Error(), "fast")
}

func TestDocumentRoundTrip(t *testing.T) {
	first, err := manifest.Marshal(NewDocument("/dev/ttyUSB0", 115200, "espruino"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, first, 0644))

	doc, err := Read(path)
	require.NoError(t, err)
	second, err := manifest.Marshal(doc)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Equal(t, `{
  "devices": {
    "/dev/ttyUSB0": {
      "baud_rate": 115200,
      "runtime": "espruino"
    }
  }
}`, string(first))
}

func TestDocumentValidates(t *testing.T) {
	data, err := manifest.Marshal(NewDocument("COM3", 9600, "espruino"))
	require.NoError(t, err)

	result, err := manifest.ValidateDevices(data)
	require.NoError(t, err)
	assert.True(t, result.Valid, "issues: %v", result.Issues)
}
