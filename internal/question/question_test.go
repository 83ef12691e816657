package question

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tapcraft-io/kubedrill/internal/equiv"
	"github.com/tapcraft-io/kubedrill/pkg/types"
)

func TestBuiltinSets(t *testing.T) {
	sets, err := BuiltinSets()
	if err != nil {
		t.Fatalf("BuiltinSets failed: %v", err)
	}
	if len(sets) == 0 {
		t.Fatal("Expected at least one built-in set")
	}

	for _, set := range sets {
		if err := set.Validate(); err != nil {
			t.Errorf("Built-in set %q does not validate: %v", set.Name, err)
		}
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	doc := `
name: test set
questions:
  - id: q1
    prompt: List pods.
    kind: command
    answers:
      - kubectl get pods
`
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	// Non-YAML files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0644); err != nil {
		t.Fatal(err)
	}

	sets, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(sets) != 1 {
		t.Fatalf("Expected 1 set, got %d", len(sets))
	}
	if sets[0].Name != "test set" {
		t.Errorf("Set name = %q, want %q", sets[0].Name, "test set")
	}
}

func TestValidate(t *testing.T) {
	valid := Question{
		ID:      "q1",
		Prompt:  "List pods.",
		Kind:    types.KindCommand,
		Answers: []string{"kubectl get pods"},
	}

	tests := []struct {
		name    string
		mutate  func(*Set)
		wantErr string
	}{
		{
			name:    "Valid set",
			mutate:  func(s *Set) {},
			wantErr: "",
		},
		{
			name:    "Missing set name",
			mutate:  func(s *Set) { s.Name = "" },
			wantErr: "no name",
		},
		{
			name:    "No questions",
			mutate:  func(s *Set) { s.Questions = nil },
			wantErr: "no questions",
		},
		{
			name: "Duplicate id",
			mutate: func(s *Set) {
				s.Questions = append(s.Questions, valid)
			},
			wantErr: "duplicate",
		},
		{
			name: "Command question without answers",
			mutate: func(s *Set) {
				s.Questions[0].Answers = nil
			},
			wantErr: "no reference answers",
		},
		{
			name: "Manifest question without manifest",
			mutate: func(s *Set) {
				s.Questions[0].Kind = types.KindManifest
				s.Questions[0].Answers = nil
			},
			wantErr: "no reference manifest",
		},
		{
			name: "Unknown kind",
			mutate: func(s *Set) {
				s.Questions[0].Kind = "essay"
			},
			wantErr: "unknown kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := &Set{Name: "s", Questions: []Question{valid}}
			tt.mutate(set)

			err := set.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate returned unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeManifest(t *testing.T) {
	engine := equiv.NewDefaultEngine()

	yamlDoc := []byte(`
apiVersion: v1
kind: Pod
metadata:
  name: demo
spec:
  containers:
    - name: app
      image: nginx
`)
	jsonDoc := []byte(`{
  "apiVersion": "v1",
  "kind": "Pod",
  "metadata": {"name": "demo"},
  "spec": {"containers": [{"name": "app", "image": "nginx"}]}
}`)

	fromYAML, err := DecodeManifest(yamlDoc)
	if err != nil {
		t.Fatalf("DecodeManifest(yaml) failed: %v", err)
	}
	fromJSON, err := DecodeManifest(jsonDoc)
	if err != nil {
		t.Fatalf("DecodeManifest(json) failed: %v", err)
	}

	if !engine.ManifestsEquivalent(fromYAML, fromJSON) {
		t.Error("The same document decoded from YAML and JSON should be equivalent")
	}
}

func TestDecodeManifest_Empty(t *testing.T) {
	for _, input := range []string{"", "   \n", "# only a comment\n"} {
		if _, err := DecodeManifest([]byte(input)); err == nil {
			t.Errorf("DecodeManifest(%q) expected error, got nil", input)
		}
	}
}

func TestDecodeManifest_Invalid(t *testing.T) {
	if _, err := DecodeManifest([]byte("{broken")); err == nil {
		t.Error("Expected error for malformed input, got nil")
	}
}
