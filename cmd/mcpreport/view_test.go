// cmd/mcpreport/view_test.go
package mcpreport

import "testing"

func TestViewCmd(t *testing.T) {
	originalStartPager := startPager
	defer func() { startPager = originalStartPager }()

	var receivedDir string
	startPager = func(runDir string) error {
		receivedDir = runDir
		return nil
	}

	if err := viewCmd.RunE(viewCmd, []string{"runs/2025-01-01"}); err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if receivedDir != "runs/2025-01-01" {
		t.Fatalf("expected run dir 'runs/2025-01-01', got %q", receivedDir)
	}
}
