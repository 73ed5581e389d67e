package quiz

import (
	"fmt"
	"strings"
)

// Issue is a single validation problem in a question list.
type Issue struct {
	Field   string
	Message string
}

type ValidationError struct {
	Issues []Issue
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "invalid questions: " + strings.Join(parts, "; ")
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks a question list before a session may start. Every problem
// is reported, not just the first one.
func Validate(questions []Question) error {
	if len(questions) == 0 {
		return ErrNoQuestions
	}

	c := &issueCollector{}
	seen := make(map[string]struct{}, len(questions))

	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		id := strings.TrimSpace(q.ID)
		if id == "" {
			c.add(prefix+".id", "is required")
		} else if _, dup := seen[id]; dup {
			c.add(prefix+".id", fmt.Sprintf("duplicate id %q", id))
		} else {
			seen[id] = struct{}{}
		}

		if strings.TrimSpace(q.Question) == "" {
			c.add(prefix+".question", "is required")
		}
		if strings.TrimSpace(q.Answer) == "" {
			c.add(prefix+".answer", "is required")
		}

		switch q.Type {
		case TypeQCM:
			if len(q.Choices) == 0 {
				c.add(prefix+".choices", "must include at least one entry")
				continue
			}
			found := false
			for j, choice := range q.Choices {
				if strings.TrimSpace(choice) == "" {
					c.add(fmt.Sprintf("%s.choices[%d]", prefix, j), "is required")
				}
				if normalizeAnswer(choice) == normalizeAnswer(q.Answer) {
					found = true
				}
			}
			if !found && strings.TrimSpace(q.Answer) != "" {
				c.add(prefix+".answer", fmt.Sprintf("%q is not among the choices", q.Answer))
			}
		case TypeOpen:
			if len(q.Choices) > 0 {
				c.add(prefix+".choices", "not allowed for open questions")
			}
		default:
			c.add(prefix+".type", fmt.Sprintf("unknown type %q", string(q.Type)))
		}
	}

	return c.result()
}
