package genres

import (
	"os"
	"testing"
)

func TestMatches(t *testing.T) {
	table := NewTable(map[string][]string{
		"Dance": {"House", "Disco"},
	})

	tests := []struct {
		name     string
		tags     []string
		selected string
		want     bool
	}{
		{"Direct tag match", []string{"Dance"}, "Dance", true},
		{"Alias matches canonical filter", []string{"House"}, "Dance", true},
		{"Canonical tag matches alias filter", []string{"Dance"}, "House", true},
		{"Sibling aliases match each other", []string{"Disco"}, "House", true},
		{"Case-insensitive", []string{"house"}, "DANCE", true},
		{"Substring in tag direction", []string{"Deep House"}, "Dance", true},
		{"Substring in filter direction", []string{"House"}, "Deep House", true},
		{"Unrelated genre", []string{"Jazz"}, "Dance", false},
		{"No tags", nil, "Dance", false},
		{"Empty filter", []string{"House"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Matches(tt.tags, tt.selected); got != tt.want {
				t.Errorf("Matches(%v, %q) = %v, want %v", tt.tags, tt.selected, got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	yamlContent := `
genres:
  Dance:
    - House
    - Disco
  Electronic:
    - Techno
`
	tmpfile, err := os.CreateTemp("", "genres_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())
	if _, err := tmpfile.WriteString(yamlContent); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	tmpfile.Close()

	table, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !table.Matches([]string{"Techno"}, "Electronic") {
		t.Error("Loaded alias table missed Techno -> Electronic")
	}
	if table.Matches([]string{"House"}, "Electronic") {
		t.Error("Loaded alias table crossed unrelated canonicals")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load("non_existent_file.yaml"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	tmpfile, _ := os.CreateTemp("", "genres_bad_*.yaml")
	defer os.Remove(tmpfile.Name())
	tmpfile.WriteString("this: is: invalid: yaml: [")
	tmpfile.Close()

	if _, err := Load(tmpfile.Name()); err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}
