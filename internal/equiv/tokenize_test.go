package equiv

import (
	"errors"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Simple words",
			input:    "kubectl get pods",
			expected: []string{"kubectl", "get", "pods"},
		},
		{
			name:     "Collapses repeated whitespace",
			input:    "kubectl   get \t pods ",
			expected: []string{"kubectl", "get", "pods"},
		},
		{
			name:     "Double quoted token",
			input:    `kubectl run nginx --labels "app=web tier=front"`,
			expected: []string{"kubectl", "run", "nginx", "--labels", "app=web tier=front"},
		},
		{
			name:     "Single quoted token",
			input:    "kubectl exec pod -- sh -c 'echo hi'",
			expected: []string{"kubectl", "exec", "pod", "--", "sh", "-c", "echo hi"},
		},
		{
			name:     "Quote glued to word",
			input:    `--selector='app=nginx'`,
			expected: []string{"--selector=app=nginx"},
		},
		{
			name:     "Single quote inside double quotes",
			input:    `echo "it's fine"`,
			expected: []string{"echo", "it's fine"},
		},
		{
			name:     "Empty input",
			input:    "   ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) returned error: %v", tt.input, err)
			}
			if len(tokens) != len(tt.expected) {
				t.Fatalf("Expected %d tokens, got %d: %v", len(tt.expected), len(tokens), tokens)
			}
			for i, tok := range tokens {
				if tok.Text != tt.expected[i] {
					t.Errorf("Token %d = %q, want %q", i, tok.Text, tt.expected[i])
				}
			}
		})
	}
}

func TestTokenize_UnbalancedQuote(t *testing.T) {
	inputs := []string{
		`kubectl get pods "unterminated`,
		`kubectl get pods 'unterminated`,
		`"`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Tokenize(input)
			if err == nil {
				t.Fatalf("Tokenize(%q) expected error, got nil", input)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("Expected *ParseError, got %T", err)
			}
		})
	}
}
