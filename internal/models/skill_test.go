package models

import (
	"errors"
	"testing"
)

func TestNormalizeSkillName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Java", "java"},
		{"  Java  ", "java"},
		{"JAVA", "java"},
		{"Machine   Learning", "machine learning"},
		{" Spring\tBoot ", "spring boot"},
	}

	for _, tt := range tests {
		got, err := NormalizeSkillName(tt.input)
		if err != nil {
			t.Errorf("NormalizeSkillName(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("NormalizeSkillName(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeSkillName_Blank(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := NormalizeSkillName(input)
		if !errors.Is(err, ErrBlankSkillName) {
			t.Errorf("NormalizeSkillName(%q) error = %v, expected ErrBlankSkillName", input, err)
		}
	}
}

func TestSkillIDFromName_Deterministic(t *testing.T) {
	variants := []string{"Java", " java ", "JAVA", "jAvA"}

	base, _ := NormalizeSkillName(variants[0])
	want := SkillIDFromName(base)
	for _, v := range variants[1:] {
		normalized, err := NormalizeSkillName(v)
		if err != nil {
			t.Fatalf("NormalizeSkillName(%q): %v", v, err)
		}
		if got := SkillIDFromName(normalized); got != want {
			t.Errorf("SkillIDFromName(%q) = %d, expected %d", v, got, want)
		}
	}
}

func TestSkillIDFromName_NonNegative(t *testing.T) {
	// Names whose first hash bytes set the sign bit must still map to a
	// non-negative id.
	for _, name := range []string{"java", "go", "rust", "ui design", "machine learning", "c++"} {
		if id := SkillIDFromName(name); id < 0 {
			t.Errorf("SkillIDFromName(%q) = %d, expected non-negative", name, id)
		}
	}
}

func TestSkillIDFromName_DistinctNames(t *testing.T) {
	if SkillIDFromName("java") == SkillIDFromName("python") {
		t.Error("distinct names should not collide")
	}
}

func TestNewSkill(t *testing.T) {
	skill, err := NewSkill("  Spring  Boot ", "")
	if err != nil {
		t.Fatalf("NewSkill: %v", err)
	}
	if skill.Name != "Spring  Boot" {
		t.Errorf("Name = %q, expected trimmed original casing", skill.Name)
	}
	if skill.NormalizedName != "spring boot" {
		t.Errorf("NormalizedName = %q, expected %q", skill.NormalizedName, "spring boot")
	}
	if skill.Category != "General" {
		t.Errorf("Category = %q, expected default %q", skill.Category, "General")
	}
	if skill.ID != SkillIDFromName("spring boot") {
		t.Errorf("ID = %d, expected content-addressed id", skill.ID)
	}
}

func TestNewSkill_Blank(t *testing.T) {
	if _, err := NewSkill("  ", "General"); !errors.Is(err, ErrBlankSkillName) {
		t.Errorf("NewSkill blank error = %v, expected ErrBlankSkillName", err)
	}
}
