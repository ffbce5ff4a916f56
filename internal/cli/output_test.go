package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockSummary struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func (m mockSummary) QuietSummary() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

func newFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, data any)
	}{
		{
			name: "map data",
			data: map[string]any{"test": "value"},
			validate: func(t *testing.T, data any) {
				dataMap := data.(map[string]any)
				if dataMap["test"] != "value" {
					t.Errorf("Expected data.test to be 'value', got %v", dataMap["test"])
				}
			},
		},
		{
			name: "struct with ID",
			data: mockSummary{ID: "item-a", Name: "Test"},
			validate: func(t *testing.T, data any) {
				dataMap := data.(map[string]any)
				if dataMap["id"] != "item-a" {
					t.Errorf("Expected data.id to be 'item-a', got %v", dataMap["id"])
				}
			},
		},
		{
			name: "string data",
			data: "simple string",
			validate: func(t *testing.T, data any) {
				if data != "simple string" {
					t.Errorf("Expected data to be 'simple string', got %v", data)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(true, false)
			if err := f.Success(tt.data); err != nil {
				t.Fatalf("Success() error = %v", err)
			}

			var result map[string]any
			if err := json.Unmarshal(out.Bytes(), &result); err != nil {
				t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, out.String())
			}
			if result["success"] != true {
				t.Error("Expected success to be true")
			}
			tt.validate(t, result["data"])
		})
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	f, out, _ := newFormatter(false, true)
	if err := f.Success(mockSummary{ID: "group-g1", Name: "Backlog"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if got := out.String(); got != "group-g1\n" {
		t.Errorf("Expected 'group-g1\\n', got %q", got)
	}

	out.Reset()
	if err := f.Success(mockDataWithoutID{Name: "x"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output for data without ID, got %q", out.String())
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	f, out, _ := newFormatter(false, false)
	if err := f.Success(mockDataWithoutID{Name: "Backlog", Value: 3}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{"name: Backlog", "value: 3"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{name: "without suggestion", code: "NOT_FOUND", message: "scenario not found"},
		{name: "with suggestion", code: "DATA_ERROR", message: "no events", suggestion: "add an events list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newFormatter(true, false)
			if err := f.ErrorWithSuggestion(tt.code, tt.message, tt.suggestion); err != nil {
				t.Fatalf("ErrorWithSuggestion() error = %v", err)
			}

			var result map[string]any
			if err := json.Unmarshal(out.Bytes(), &result); err != nil {
				t.Fatalf("Failed to parse JSON output: %v", err)
			}
			if result["success"] != false {
				t.Error("Expected success to be false")
			}
			errData := result["error"].(map[string]any)
			if errData["code"] != tt.code {
				t.Errorf("Expected code %q, got %v", tt.code, errData["code"])
			}
			if errData["message"] != tt.message {
				t.Errorf("Expected message %q, got %v", tt.message, errData["message"])
			}
			_, hasSuggestion := errData["suggestion"]
			if hasSuggestion != (tt.suggestion != "") {
				t.Errorf("Expected suggestion present = %v, got %v", tt.suggestion != "", hasSuggestion)
			}
		})
	}
}

func TestOutputFormatter_Error_HumanReadable(t *testing.T) {
	f, out, errOut := newFormatter(false, false)
	if err := f.ErrorWithSuggestion("DATA_ERROR", "no events", "add an events list"); err != nil {
		t.Fatalf("ErrorWithSuggestion() error = %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %q", out.String())
	}
	got := errOut.String()
	if !strings.Contains(got, "Error: no events") {
		t.Errorf("Expected error message on stderr, got %q", got)
	}
	if !strings.Contains(got, "Suggestion: add an events list") {
		t.Errorf("Expected suggestion on stderr, got %q", got)
	}
}
