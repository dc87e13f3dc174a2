package debate

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/ethicsim/internal/errors"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"out.yaml", FormatYAML, false},
		{"out.YML", FormatYAML, false},
		{"dir/out.json", FormatJSON, false},
		{"out.pdf", "", true},
		{"out", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func completedSequencer(t *testing.T) *Sequencer {
	t.Helper()
	seq := newTestSequencer(t, []int{0, 2, 4}, WithRunID("run-export"), WithRandom(&seqRandom{vals: []float64{0.4}}))
	if _, err := seq.Play(context.Background(), newFiringClock(), testInterval, nil); err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	return seq
}

func TestTranscript_Incomplete(t *testing.T) {
	seq := newTestSequencer(t, []int{0, 1})
	if _, err := seq.Transcript(); !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("Transcript() error = %v, want ErrInvalidInput", err)
	}
}

func TestTranscript_EncodeJSON(t *testing.T) {
	tr, err := completedSequencer(t).Transcript()
	if err != nil {
		t.Fatalf("Transcript() error = %v", err)
	}

	var buf bytes.Buffer
	if err := tr.Encode(&buf, FormatJSON); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var decoded struct {
		RunID        string `json:"run_id"`
		Participants []struct {
			Index int    `json:"index"`
			Role  string `json:"role"`
		} `json:"participants"`
		Rounds []struct {
			Messages []json.RawMessage `json:"messages"`
		} `json:"rounds"`
		Result struct {
			WinnerIndex int                `json:"winner_index"`
			Scores      map[string]float64 `json:"scores"`
		} `json:"result"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded.RunID != "run-export" {
		t.Errorf("run_id = %q", decoded.RunID)
	}
	if len(decoded.Participants) != 3 || decoded.Participants[2].Role != "Technical Expert" {
		t.Errorf("participants = %+v", decoded.Participants)
	}
	if len(decoded.Rounds) != 3 || len(decoded.Rounds[2].Messages) != 2 {
		t.Errorf("rounds = %+v", decoded.Rounds)
	}
	if len(decoded.Result.Scores) != 3 {
		t.Errorf("scores = %v", decoded.Result.Scores)
	}
}

func TestTranscript_WriteFileYAML(t *testing.T) {
	tr, err := completedSequencer(t).Transcript()
	if err != nil {
		t.Fatalf("Transcript() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "debate.yaml")
	if err := tr.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded struct {
		RunID    string `yaml:"run_id"`
		Scenario struct {
			ID string `yaml:"id"`
		} `yaml:"scenario"`
		Result struct {
			Policy string `yaml:"policy_recommendation"`
		} `yaml:"result"`
	}
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if decoded.RunID != "run-export" || decoded.Scenario.ID != "av-dilemma" {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Result.Policy == "" {
		t.Error("policy_recommendation missing")
	}
}

func TestTranscript_WriteFileRejectsUnknownExtension(t *testing.T) {
	tr, err := completedSequencer(t).Transcript()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "debate.pdf")
	if err := tr.WriteFile(path); err == nil {
		t.Error("WriteFile(.pdf) should fail")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should be created for an unknown extension")
	}
}
