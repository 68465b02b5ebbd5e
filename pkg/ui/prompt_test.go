package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(m PromptModel, text string) PromptModel {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return updated.(PromptModel)
}

func TestPromptModel_Enter(t *testing.T) {
	m := NewPromptModel("Title", "My Great Post")
	m = typeInto(m, "  Launch Notes ")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(PromptModel)

	if !m.done {
		t.Error("Expected prompt to be done after Enter")
	}
	if cmd == nil {
		t.Error("Expected quit command after Enter")
	}
	if m.Value() != "Launch Notes" {
		t.Errorf("Value() = %q, want %q", m.Value(), "Launch Notes")
	}
	if m.View() != "" {
		t.Error("Expected empty view once done")
	}
}

func TestPromptModel_EnterOnEmpty(t *testing.T) {
	m := NewPromptModel("Title", "")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(PromptModel)

	if m.done {
		t.Error("Empty input should not complete the prompt")
	}
	if cmd != nil {
		t.Error("Expected no command on empty Enter")
	}
	if !strings.Contains(m.View(), "a value is required") {
		t.Errorf("Expected validation message in view, got %q", m.View())
	}

	m = typeInto(m, "x")
	if strings.Contains(m.View(), "a value is required") {
		t.Error("Validation message should clear after typing")
	}
}

func TestPromptModel_Cancel(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewPromptModel("Title", "")
		updated, cmd := m.Update(tea.KeyMsg{Type: key})
		m = updated.(PromptModel)

		if !m.cancelled {
			t.Errorf("Expected cancelled after %v", key)
		}
		if cmd == nil {
			t.Errorf("Expected quit command after %v", key)
		}
	}
}

func TestPickOne_NoOptions(t *testing.T) {
	if _, err := PickOne("Category", nil); err == nil {
		t.Error("Expected error with no options")
	}
}

func TestRenderNumberedList(t *testing.T) {
	out := RenderNumberedList([]string{"first", "second"})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "1.") || !strings.HasSuffix(lines[0], "first") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2.") || !strings.HasSuffix(lines[1], "second") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestTable_Render(t *testing.T) {
	table := NewTable(TableColumn{Header: "File"}, TableColumn{Header: "Status", Width: 8})
	table.AddRow("a-very-long-name.mdx", "ok")
	table.AddRow("b.json")

	out := table.Render()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header, rule and 2 rows, got %d lines: %q", len(lines), out)
	}
	if !strings.Contains(lines[2], "a-very-long-name.mdx") {
		t.Errorf("row 0 = %q", lines[2])
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatSection("📋", "Next steps"); !strings.Contains(got, "📋 Next steps:") {
		t.Errorf("FormatSection = %q", got)
	}
	if got := FormatWarning("careful"); !strings.Contains(got, markWarning+" careful") {
		t.Errorf("FormatWarning = %q", got)
	}
	if got := FormatError("broken"); !strings.Contains(got, markError+" broken") {
		t.Errorf("FormatError = %q", got)
	}
}
