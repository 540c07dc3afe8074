package version

import "testing"

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		build string
		want  string
	}{
		{"", "1.0.0"},
		{"dev-42", "1.0.0-dev-42"},
		{"bad build", "1.0.0"},
		{"rc.1", "1.0.0"},
	}
	for _, test := range tests {
		if got := formatVersion(test.build); got != test.want {
			t.Errorf("formatVersion(%q) = %q, want %q", test.build, got, test.want)
		}
	}

	if Version() != formatVersion(appBuild) {
		t.Errorf("Version() = %q, want %q", Version(), formatVersion(appBuild))
	}
}
