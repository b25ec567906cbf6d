package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrUnrecognizedAnswer is returned by ParseConfirmation for input that is
// neither a yes nor a no.
var ErrUnrecognizedAnswer = errors.New("unrecognized answer")

// ErrInterrupted is returned when the user aborts a prompt with Ctrl-C.
var ErrInterrupted = errors.New("prompt interrupted")

// Question is a single-choice question. With no Choices it is asked as free
// text, Default pre-filled. An empty Default means no default.
type Question struct {
	Name    string
	Message string
	Choices []string
	Default string
}

// Prompter presents questions to a human.
type Prompter interface {
	// Ask asks the questions in order and returns answers keyed by Question.Name.
	Ask(ctx context.Context, questions []Question) (map[string]string, error)
	// Line asks for a single line of free text.
	Line(ctx context.Context, message string) (string, error)
}

// SurveyIO holds the streams survey reads from and renders to.
type SurveyIO struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err terminal.FileWriter
}

// DefaultSurveyIO uses the process's standard streams.
var DefaultSurveyIO = SurveyIO{
	In:  os.Stdin,
	Out: os.Stdout,
	Err: os.Stderr,
}

// WithStdio returns the survey option binding these streams.
func (s SurveyIO) WithStdio() survey.AskOpt {
	return survey.WithStdio(s.In, s.Out, s.Err)
}

// SurveyPrompter implements Prompter with github.com/AlecAivazis/survey/v2.
type SurveyPrompter struct {
	io SurveyIO
}

// NewSurveyPrompter returns a Prompter rendering on the given streams.
func NewSurveyPrompter(stdio SurveyIO) *SurveyPrompter {
	return &SurveyPrompter{io: stdio}
}

// Ask implements Prompter.
func (p *SurveyPrompter) Ask(ctx context.Context, questions []Question) (map[string]string, error) {
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var answer string
		if err := survey.AskOne(surveyPrompt(q), &answer, p.io.WithStdio()); err != nil {
			return nil, wrapSurveyErr(q.Name, err)
		}
		answers[q.Name] = answer
	}
	return answers, nil
}

// Line implements Prompter.
func (p *SurveyPrompter) Line(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, p.io.WithStdio()); err != nil {
		return "", wrapSurveyErr("input", err)
	}
	return answer, nil
}

// surveyPrompt maps a Question onto a survey prompt. survey refuses a Select
// without options, so an empty choice list falls back to text input.
func surveyPrompt(q Question) survey.Prompt {
	if len(q.Choices) == 0 {
		return &survey.Input{Message: q.Message, Default: q.Default}
	}

	sel := &survey.Select{
		Message: q.Message,
		Options: q.Choices,
	}
	if q.Default != "" {
		sel.Default = q.Default
	}
	return sel
}

func wrapSurveyErr(name string, err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrInterrupted
	}
	return fmt.Errorf("asking %q: %w", name, err)
}

// ParseConfirmation interprets a free-text yes/no answer. Input is trimmed and
// lowercased; "y" and "yes" confirm, "n" and "no" decline.
func ParseConfirmation(input string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("%w %q: type y or n", ErrUnrecognizedAnswer, input)
	}
}
