package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfirmation(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"y", true, false},
		{"Y", true, false},
		{"yes", true, false},
		{"  YES \n", true, false},
		{"n", false, false},
		{"No", false, false},
		{" n\r\n", false, false},
		{"maybe", false, true},
		{"", false, true},
		{"yep", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConfirmation(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrUnrecognizedAnswer), "want ErrUnrecognizedAnswer, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSurveyPromptSelect(t *testing.T) {
	p := surveyPrompt(Question{Message: "Select the baud rate:", Choices: []string{"9600", "115200"}, Default: "115200"})
	sel, ok := p.(*survey.Select)
	require.True(t, ok, "want *survey.Select, got %T", p)
	assert.Equal(t, []string{"9600", "115200"}, sel.Options)
	assert.Equal(t, "115200", sel.Default)
}

func TestSurveyPromptSelectWithoutDefault(t *testing.T) {
	p := surveyPrompt(Question{Message: "Pick", Choices: []string{"a"}})
	sel, ok := p.(*survey.Select)
	require.True(t, ok)
	assert.Nil(t, sel.Default)
}

func TestSurveyPromptNoChoicesFallsBackToInput(t *testing.T) {
	p := surveyPrompt(Question{Message: "Select a port:"})
	in, ok := p.(*survey.Input)
	require.True(t, ok, "want *survey.Input, got %T", p)
	assert.Equal(t, "", in.Default)
}

func TestScriptedDefaults(t *testing.T) {
	s := &Scripted{Answers: map[string]string{"port": "COM3"}}
	answers, err := s.Ask(context.Background(), []Question{
		{Name: "port", Message: "Select a port:", Choices: []string{"COM1", "COM3"}, Default: "COM1"},
		{Name: "baud", Message: "Select the baud rate:", Choices: []string{"9600", "115200"}, Default: "115200"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"port": "COM3", "baud": "115200"}, answers)
	assert.Equal(t, []string{"Select a port:", "Select the baud rate:"}, s.Asked)
}

func TestScriptedMissingAnswerWithoutDefault(t *testing.T) {
	s := &Scripted{}
	_, err := s.Ask(context.Background(), []Question{{Name: "port", Message: "Select a port:"}})
	assert.Error(t, err)
}

func TestScriptedLines(t *testing.T) {
	s := &Scripted{Lines: []string{"y"}}
	line, err := s.Line(context.Background(), "Overwrite?")
	require.NoError(t, err)
	assert.Equal(t, "y", line)

	_, err = s.Line(context.Background(), "Again?")
	assert.Error(t, err)
}

func TestScriptedFallback(t *testing.T) {
	fallback := &Scripted{Answers: map[string]string{"baud": "9600"}, Lines: []string{"n"}}
	s := &Scripted{Answers: map[string]string{"port": "COM3"}, Fallback: fallback}

	answers, err := s.Ask(context.Background(), []Question{
		{Name: "port", Message: "Select a port:"},
		{Name: "baud", Message: "Select the baud rate:", Default: "115200"},
	})
	require.NoError(t, err)
	assert.Equal(t, "COM3", answers["port"])
	assert.Equal(t, "9600", answers["baud"])
	assert.Equal(t, []string{"Select a port:"}, s.Asked)
	assert.Equal(t, []string{"Select the baud rate:"}, fallback.Asked)

	line, err := s.Line(context.Background(), "Overwrite?")
	require.NoError(t, err)
	assert.Equal(t, "n", line)
}

func TestWrapSurveyErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"ctrl-c", terminal.InterruptErr, ErrInterrupted},
		{"wrapped ctrl-c", fmt.Errorf("render: %w", terminal.InterruptErr), ErrInterrupted},
		{"eof", io.EOF, io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapSurveyErr("port", tt.err)
			assert.ErrorIs(t, err, tt.want)
			if tt.want != ErrInterrupted {
				assert.NotErrorIs(t, err, ErrInterrupted)
				assert.Contains(t, err.Error(), `asking "port"`)
			}
		})
	}
}
