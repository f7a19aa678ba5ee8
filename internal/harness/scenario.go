package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/drills/internal/exercise"
)

// Scenario defines a replayable drill run.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Exercise is the drill to run (see exercise.Names).
	Exercise string `yaml:"exercise"`

	// SessionID fixes the session id. Defaults to testutil.DefaultSessionID.
	SessionID string `yaml:"session_id,omitempty"`

	// Input holds the scripted lines fed to interactive drills.
	Input []string `yaml:"input,omitempty"`

	// Args holds the arguments of batch drills.
	Args *Args `yaml:"args,omitempty"`

	// Expect states what the run must produce.
	Expect Expect `yaml:"expect"`
}

// Args are batch drill arguments.
type Args struct {
	Values []int64 `yaml:"values"`
	K      int     `yaml:"k"`
}

// Expect describes the expected outcome of a run.
type Expect struct {
	// Output is the expected result line.
	Output string `yaml:"output,omitempty"`

	// Error is the expected error kind (see error kind constants).
	Error string `yaml:"error,omitempty"`

	// Rejections is the expected number of rejected input lines.
	Rejections *int `yaml:"rejections,omitempty"`

	// Notices is the expected number of notice lines (pair rejections).
	Notices *int `yaml:"notices,omitempty"`
}

// Error kinds a scenario can expect.
const (
	ErrorEndOfInput = "end_of_input"
	ErrorNegativeK  = "negative_k"
	ErrorCancelled  = "cancelled"
	ErrorOther      = "error"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Exercise == "" {
		return fmt.Errorf("exercise is required")
	}

	ex, err := exercise.Lookup(s.Exercise)
	if err != nil {
		return err
	}

	if ex.Interactive() && s.Args != nil {
		return fmt.Errorf("args are not accepted by interactive exercise %q", s.Exercise)
	}
	if !ex.Interactive() && len(s.Input) > 0 {
		return fmt.Errorf("input is not accepted by batch exercise %q", s.Exercise)
	}

	hasOutput := s.Expect.Output != ""
	hasError := s.Expect.Error != ""
	if hasOutput == hasError {
		return fmt.Errorf("expect: exactly one of output or error is required")
	}

	if hasError {
		switch s.Expect.Error {
		case ErrorEndOfInput, ErrorNegativeK, ErrorCancelled, ErrorOther:
		default:
			return fmt.Errorf("expect.error: unknown kind %q", s.Expect.Error)
		}
	}

	if s.Expect.Rejections != nil && *s.Expect.Rejections < 0 {
		return fmt.Errorf("expect.rejections must not be negative")
	}
	if s.Expect.Notices != nil && *s.Expect.Notices < 0 {
		return fmt.Errorf("expect.notices must not be negative")
	}

	return nil
}
