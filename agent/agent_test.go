package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestLibrary(t *testing.T) {
	tools := []*Tool{
		{Name: "Report", Run: func(context.Context) (string, error) { return "# Report", nil }},
		{Name: "Due", Run: func(context.Context) (string, error) { return "", errors.New("no tracker") }},
	}
	lib := NewLibrary(tools)

	tests := []struct {
		call    string
		wantKey string
		wantVal string
	}{
		{"Report", "output", "# Report"},
		{"Due", "error", "no tracker"},
		{"Missing", "error", "unknown function Missing"},
	}
	for _, tt := range tests {
		t.Run(tt.call, func(t *testing.T) {
			resp := lib(context.Background(), &genai.FunctionCall{ID: "42", Name: tt.call})
			if resp.ID != "42" || resp.Name != tt.call {
				t.Errorf("response is for %s/%s, want 42/%s", resp.ID, resp.Name, tt.call)
			}
			if got := resp.Response[tt.wantKey]; got != tt.wantVal {
				t.Errorf("Response[%q] = %v, want %q", tt.wantKey, got, tt.wantVal)
			}
		})
	}
}

func TestNewDeclaration(t *testing.T) {
	tools := []*Tool{{Name: "Report", Description: "the report"}, {Name: "Due"}}
	decls := NewDeclaration(tools)
	if len(decls) != 2 {
		t.Fatalf("got %d declarations, want 2", len(decls))
	}
	if decls[0].Name != "Report" || decls[0].Description != "the report" {
		t.Errorf("unexpected declaration %+v", decls[0])
	}
}

func TestExpertCall(t *testing.T) {
	e := &Expert{Name: "Archivist"}

	resp := e.Call(context.Background(), "1", map[string]any{"question": 3})
	if msg, _ := resp.Response["error"].(string); !strings.Contains(msg, "invalid question type int") {
		t.Errorf("Call() with a bad question = %v", resp.Response)
	}

	resp = e.Call(context.Background(), "2", map[string]any{"question": "how many?"})
	if msg, _ := resp.Response["error"].(string); !strings.Contains(msg, "not started") {
		t.Errorf("Call() on a stopped expert = %v", resp.Response)
	}

	d := e.Declaration()
	if d.Name != "Archivist" || d.Parameters.Required[0] != "question" {
		t.Errorf("unexpected declaration %+v", d)
	}
}

func TestNewCoach(t *testing.T) {
	alone := NewCoach("")
	if alone.ModelName != DefaultModel {
		t.Errorf("model = %q, want %q", alone.ModelName, DefaultModel)
	}
	if alone.Library != nil || len(alone.Config.Tools) != 0 {
		t.Error("a coach without experts should have no tools")
	}

	archivist := NewArchivist("m", &Tool{Name: "Report"})
	coach := NewCoach("m", archivist)
	if coach.Library == nil {
		t.Fatal("coach should call its experts")
	}
	decls := coach.Config.Tools[0].FunctionDeclarations
	if len(decls) != 1 || decls[0].Name != "Archivist" {
		t.Errorf("coach tools = %+v, want the Archivist", decls)
	}
}

func TestReviewPrompt(t *testing.T) {
	got := ReviewPrompt("\n# Recommendation Tracker\n\n")
	if !strings.HasPrefix(got, "Review my recommendation tracker report") {
		t.Errorf("ReviewPrompt() = %q", got)
	}
	if !strings.HasSuffix(got, "\n\n# Recommendation Tracker\n") {
		t.Errorf("ReviewPrompt() should end with the trimmed report, got %q", got)
	}
}
