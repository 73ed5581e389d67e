package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a question list from a JSON or YAML file, picked by extension,
// and validates it. The JSON form is the same array the quiz pages embed.
func Load(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	var questions []Question
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		questions, err = parseJSON(data)
	} else {
		questions, err = parseYAML(data)
	}
	if err != nil {
		return nil, err
	}

	questions = normalize(questions)
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func parseJSON(data []byte) ([]Question, error) {
	var questions []Question
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&questions); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: trailing content")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return questions, nil
}

func parseYAML(data []byte) ([]Question, error) {
	var questions []Question
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&questions); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return questions, nil
}

func normalize(questions []Question) []Question {
	for i, q := range questions {
		q.ID = strings.TrimSpace(q.ID)
		q.Question = strings.TrimSpace(q.Question)
		// The backend's older enum value for free-text questions.
		if q.Type == "open_question" {
			q.Type = TypeOpen
		}
		questions[i] = q
	}
	return questions
}
