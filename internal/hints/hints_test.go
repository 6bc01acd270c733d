package hints

// Notes:
// - ForBrowserConnect tests cannot use t.Parallel() because they use
//   t.Setenv() and replace the package-level IsInContainer variable.

import (
	"strings"
	"testing"
)

// stubContainer replaces IsInContainer for the duration of the test.
func stubContainer(t *testing.T, inContainer bool) {
	t.Helper()

	orig := IsInContainer
	t.Cleanup(func() { IsInContainer = orig })
	IsInContainer = func() bool { return inContainer }
}

// ---------------------------------------------------------------------------
// TestForBrowserConnect - Environment-aware rod suggestions
// ---------------------------------------------------------------------------

func TestForBrowserConnect(t *testing.T) {
	tests := []struct {
		name        string
		inContainer bool
		env         map[string]string
		want        []string
		notWant     []string
	}{
		{
			name: "in CI",
			env:  map[string]string{"CI": "true", "ROD_NO_SANDBOX": "", "ROD_BROWSER_BIN": ""},
			want: []string{"ROD_NO_SANDBOX", "ROD_BROWSER_BIN", "--pdf"},
		},
		{
			name:        "in Docker",
			inContainer: true,
			env:         map[string]string{"CI": "", "ROD_NO_SANDBOX": "", "ROD_BROWSER_BIN": ""},
			want:        []string{"ROD_NO_SANDBOX"},
		},
		{
			name:        "sandbox already disabled",
			inContainer: true,
			env:         map[string]string{"CI": "", "ROD_NO_SANDBOX": "1", "ROD_BROWSER_BIN": ""},
			notWant:     []string{"ROD_NO_SANDBOX"},
		},
		{
			name:    "browser bin set",
			env:     map[string]string{"CI": "", "ROD_NO_SANDBOX": "", "ROD_BROWSER_BIN": "/usr/bin/chromium"},
			notWant: []string{"ROD_BROWSER_BIN", "ROD_NO_SANDBOX"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubContainer(t, tt.inContainer)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			t.Setenv("GITHUB_ACTIONS", "")
			t.Setenv("GITLAB_CI", "")
			t.Setenv("JENKINS_URL", "")

			hint := ForBrowserConnect()
			if !strings.HasPrefix(hint, "\n  hint: ") {
				t.Errorf("hint %q lacks prefix", hint)
			}
			for _, w := range tt.want {
				if !strings.Contains(hint, w) {
					t.Errorf("hint %q should mention %q", hint, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(hint, w) {
					t.Errorf("hint %q should not mention %q", hint, w)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestForConfigNotFound - Suggested config locations
// ---------------------------------------------------------------------------

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{"no paths", nil, "--config"},
		{"user path suggested", []string{"./site.yaml", "/home/u/.config/dadada/site.yaml"}, "create /home/u/.config/dadada/site.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("hint %q should contain %q", hint, tt.contains)
			}
		})
	}
}

func TestForAssetNotFound(t *testing.T) {
	t.Parallel()

	if got := ForAssetNotFound(nil); got != "" {
		t.Errorf("ForAssetNotFound(nil) = %q, want empty", got)
	}
	if got := ForAssetNotFound([]string{"default", "compact"}); !strings.Contains(got, "default, compact") {
		t.Errorf("ForAssetNotFound() = %q", got)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	for _, h := range []string{ForTimeout(), ForOutputDirectory(), ForInputFile(), ForWorkspace()} {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
