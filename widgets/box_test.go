package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestBoxRendersTitleAndContent(t *testing.T) {
	out := ansi.Strip(Box{Title: "Visitors", Content: "Nobody is signed in."}.Render(40, 8))
	if !strings.Contains(out, "Visitors") {
		t.Fatalf("title missing: %q", out)
	}
	if !strings.Contains(out, "Nobody is signed in.") {
		t.Fatalf("content missing: %q", out)
	}
	if !strings.Contains(out, "╭") {
		t.Fatalf("expected a rounded border")
	}
	if (Box{Title: "x"}).Render(0, 8) != "" {
		t.Fatalf("zero width renders nothing")
	}
}

func TestListClipsToHeight(t *testing.T) {
	l := List{Title: "Activity", Items: []string{"one", "two", "three", "four"}}
	out := ansi.Strip(l.Render(30, 3))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected heading plus two items, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "Activity") {
		t.Fatalf("heading missing: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "• one") {
		t.Fatalf("expected bulleted item, got %q", lines[1])
	}
}

func TestListTruncatesWideItems(t *testing.T) {
	l := List{Title: "Activity", Items: []string{strings.Repeat("x", 50)}}
	out := ansi.Strip(l.Render(20, 5))
	for _, line := range strings.Split(out, "\n") {
		if ansi.StringWidth(line) > 20 {
			t.Fatalf("line wider than widget: %q", line)
		}
	}
}
