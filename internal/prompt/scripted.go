package prompt

import (
	"context"
	"fmt"
)

// Scripted is a Prompter that replays canned answers. It backs the
// non-interactive --port, --baud and --yes flags, and the tests.
type Scripted struct {
	// Answers maps question names to answers.
	Answers map[string]string
	// Lines are returned by successive Line calls.
	Lines []string
	// Fallback, when set, is asked whatever the script does not cover.
	// Without it an unscripted question takes its default.
	Fallback Prompter

	// Asked records every scripted question and line message, in order.
	Asked []string
}

// Ask implements Prompter.
func (s *Scripted) Ask(ctx context.Context, questions []Question) (map[string]string, error) {
	out := make(map[string]string, len(questions))
	for _, q := range questions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if answer, ok := s.Answers[q.Name]; ok {
			s.Asked = append(s.Asked, q.Message)
			out[q.Name] = answer
			continue
		}

		if s.Fallback != nil {
			answers, err := s.Fallback.Ask(ctx, []Question{q})
			if err != nil {
				return nil, err
			}
			out[q.Name] = answers[q.Name]
			continue
		}

		s.Asked = append(s.Asked, q.Message)
		if q.Default == "" {
			return nil, fmt.Errorf("no answer for %q and no default", q.Name)
		}
		out[q.Name] = q.Default
	}
	return out, nil
}

// Line implements Prompter.
func (s *Scripted) Line(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(s.Lines) == 0 {
		if s.Fallback != nil {
			return s.Fallback.Line(ctx, message)
		}
		return "", fmt.Errorf("no scripted answer for %q", message)
	}

	s.Asked = append(s.Asked, message)
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}
