package pipeline

import "testing"

func TestPreprocess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix line endings unchanged", "a\nb", "a\nb"},
		{"windows line endings", "a\r\nb", "a\nb"},
		{"old mac line endings", "a\rb", "a\nb"},
		{"three newlines compress to two", "a\n\n\nb", "a\n\nb"},
		{"many newlines compress to two", "a\n\n\n\n\n\nb", "a\n\nb"},
		{"paragraph break kept", "a\n\nb", "a\n\nb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Preprocess(tt.input); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
