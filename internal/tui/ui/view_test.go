package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/hy4ri/whatsup/internal/config"
	"github.com/hy4ri/whatsup/internal/logging"
	"github.com/hy4ri/whatsup/internal/task"
	"github.com/hy4ri/whatsup/internal/tui/state"
)

func newTestRenderer(tasks ...task.Task) *Renderer {
	store := task.NewStore(task.PersistEveryMutation)
	s := state.New(store, nil, nil, config.DefaultConfig(), logging.Discard(), nil)
	s.Width, s.Height = 60, 24
	if tasks != nil {
		store.Apply(tasks)
	}
	return NewRenderer(s)
}

func TestView_NotSized(t *testing.T) {
	r := newTestRenderer()
	r.Width = 0
	if got := r.View(); got != "Loading..." {
		t.Errorf("Expected placeholder before first resize, got %q", got)
	}
}

func TestView_LoadingSpinner(t *testing.T) {
	r := newTestRenderer()

	out := ansi.Strip(r.View())
	if !strings.Contains(out, "Loading tasks") {
		t.Errorf("Expected loading indicator, got %q", out)
	}
	if strings.Contains(out, "No tasks yet") {
		t.Errorf("Empty heading must wait for the load, got %q", out)
	}
}

func TestView_Empty(t *testing.T) {
	r := newTestRenderer()
	r.Store.Apply(nil)

	out := ansi.Strip(r.View())
	for _, want := range []string{config.DefaultTitle, "No tasks yet", "+", "Tasks", "About"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}
}

func TestView_Rows(t *testing.T) {
	r := newTestRenderer(
		task.Task{ID: "1", Subject: "Buy milk"},
		task.Task{ID: "2", Subject: "Walk the dog", Done: true},
	)

	out := ansi.Strip(r.View())
	for _, want := range []string{"[ ] Buy milk", "[x] Walk the dog", "1 of 2 done"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in %q", want, out)
		}
	}

	if h := lipgloss.Height(r.View()); h > r.Height {
		t.Errorf("View is %d lines, taller than the %d line terminal", h, r.Height)
	}
	for i, line := range strings.Split(r.View(), "\n") {
		if w := lipgloss.Width(line); w > r.Width {
			t.Errorf("Line %d is %d cells wide", i, w)
		}
	}
}

func TestView_Editing(t *testing.T) {
	r := newTestRenderer(task.Task{ID: "1", Subject: "draft"})
	r.Store.SetEditingCursor("1")
	r.EditInput.SetValue("draft")
	r.EditInput.Focus()

	out := ansi.Strip(r.View())
	if !strings.Contains(out, "finish editing") {
		t.Errorf("Expected editing help, got %q", out)
	}
}

func TestView_Status(t *testing.T) {
	r := newTestRenderer(task.Task{ID: "1"})
	r.StatusMsg = "Copied: hello"

	if out := ansi.Strip(r.View()); !strings.Contains(out, "Copied: hello") {
		t.Errorf("Expected status in %q", out)
	}
}

func TestView_About(t *testing.T) {
	r := newTestRenderer(task.Task{ID: "1", Subject: "hidden"})
	r.CurrentView = state.ViewAbout

	out := ansi.Strip(r.View())
	if !strings.Contains(out, "Keys") {
		t.Errorf("Expected about page, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("About should not show the list, got %q", out)
	}

	first := r.about.out
	r.View()
	if r.about.out != first {
		t.Errorf("Expected cached about page to be reused")
	}
}

func TestView_Quitting(t *testing.T) {
	r := newTestRenderer()
	r.Quitting = true
	if r.View() != "" {
		t.Errorf("Expected empty view after quit")
	}
}
