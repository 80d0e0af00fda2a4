package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain sentence unchanged",
			input:    "The sky is blue.",
			expected: "The sky is blue.",
		},
		{
			name:     "strips mentions",
			input:    "@someone said the sky is blue.",
			expected: "said the sky is blue.",
		},
		{
			name:     "strips hashtags",
			input:    "The sky is blue #fact #science",
			expected: "The sky is blue",
		},
		{
			name:     "strips urls",
			input:    "Read this https://example.com/article now",
			expected: "Read this  now",
		},
		{
			name:     "all noise yields empty string",
			input:    "#fact @someone https://x.com",
			expected: "",
		},
		{
			name:     "trims surrounding whitespace",
			input:    "  The sky is blue.  ",
			expected: "The sky is blue.",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"The sky is blue.",
		"Vaccines are safe and effective",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
