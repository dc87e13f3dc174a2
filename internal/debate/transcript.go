package debate

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/ethicsim/internal/catalog"
	"github.com/Iron-Ham/ethicsim/internal/errors"
)

// Format is a transcript serialization format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.NewValidationError("export file must end in .yaml, .yml or .json").
			WithField("export").
			WithValue(path)
	}
}

// Participant is an agent as recorded in a transcript.
type Participant struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	Role  string `json:"role" yaml:"role"`
}

// Transcript is the exportable record of a completed run.
type Transcript struct {
	RunID        string           `json:"run_id" yaml:"run_id"`
	ExportedAt   time.Time        `json:"exported_at" yaml:"exported_at"`
	Scenario     catalog.Scenario `json:"scenario" yaml:"scenario"`
	Participants []Participant    `json:"participants" yaml:"participants"`
	Rounds       []Round          `json:"rounds" yaml:"rounds"`
	Result       Result           `json:"result" yaml:"result"`
}

// Transcript builds the exportable record. It fails unless the run is
// complete.
func (s *Sequencer) Transcript() (Transcript, error) {
	res, ok := s.Result()
	if !ok {
		return Transcript{}, errors.NewValidationError("debate has not completed").
			WithField("state").
			WithValue(string(s.State()))
	}

	participants := make([]Participant, len(s.agents))
	for i, idx := range s.agents {
		a := catalog.MustAgent(idx)
		participants[i] = Participant{Index: idx, Name: a.Name, Role: a.Role}
	}
	return Transcript{
		RunID:        s.id,
		ExportedAt:   time.Now().UTC(),
		Scenario:     s.Scenario(),
		Participants: participants,
		Rounds:       s.Rounds(),
		Result:       res,
	}, nil
}

// Encode writes t to w in the given format.
func (t Transcript) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode transcript yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode transcript json: %w", err)
		}
		return nil
	default:
		return errors.NewValidationError("unknown transcript format").WithField("format").WithValue(string(format))
	}
}

// WriteFile writes t to path, choosing the format from the extension.
func (t Transcript) WriteFile(path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create transcript file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close transcript file: %w", cerr)
		}
	}()
	return t.Encode(f, format)
}
