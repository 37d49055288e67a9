package ui

import (
	"strings"
	"testing"
)

func TestPanel_ContainsContentAndTitle(t *testing.T) {
	out := Panel("hello world", "Greeting", ColorCyan)
	if !strings.Contains(out, "hello world") {
		t.Error("Panel should contain the content")
	}
	if !strings.Contains(out, "Greeting") {
		t.Error("Panel should contain the title")
	}
}

func TestPanel_NoTitle(t *testing.T) {
	out := Panel("content only", "", ColorGreen)
	if !strings.Contains(out, "content only") {
		t.Error("Panel should contain the content")
	}
}

func TestSectionHeader(t *testing.T) {
	out := SectionHeader("MODELS", ColorCyan)
	if !strings.Contains(out, "MODELS") {
		t.Error("SectionHeader should contain the title")
	}
	if !strings.Contains(out, "───") {
		t.Error("SectionHeader should contain the rule characters")
	}
}

func TestWarning(t *testing.T) {
	out := Warning("careful")
	if !strings.Contains(out, "careful") {
		t.Error("Warning should contain the text")
	}
}
