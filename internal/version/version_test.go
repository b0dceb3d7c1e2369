package version

import "testing"

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Fatal("Version should have a default value")
	}
}

func TestVersionOverride(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	}()

	Version = "1.2.3"
	GitCommit = "abc123"
	BuildDate = "2026-08-30T00:00:00Z"

	if Version != "1.2.3" || GitCommit != "abc123" || BuildDate != "2026-08-30T00:00:00Z" {
		t.Fatalf("override failed: %q %q %q", Version, GitCommit, BuildDate)
	}
}
