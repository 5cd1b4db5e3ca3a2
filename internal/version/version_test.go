package version

import "testing"

func TestVersion_Initialized(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
}

func TestBuildInfo_Initialized(t *testing.T) {
	if BuildTime == "" || GitCommit == "" {
		t.Error("build metadata should be initialized")
	}
}
