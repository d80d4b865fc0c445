package model

import "testing"

func TestExportWarningIDsAreNonEmptyAndUnique(t *testing.T) {
	if ExportWarningPropertyKey != "MU_FBX_EXPORT_warnings" {
		t.Fatalf("property key mismatch: got=%s want=%s", ExportWarningPropertyKey, "MU_FBX_EXPORT_warnings")
	}

	warningIDs := []string{
		ExportWarningSharedDataBake,
		ExportWarningNoCandidates,
		ExportWarningActionIncompatible,
		ExportWarningGroupIncompatible,
		ExportWarningTargetVanished,
	}

	seen := map[string]struct{}{}
	for _, warningID := range warningIDs {
		if warningID == "" {
			t.Fatalf("warning id should not be empty")
		}
		if _, exists := seen[warningID]; exists {
			t.Fatalf("warning id should be unique: %s", warningID)
		}
		seen[warningID] = struct{}{}
	}
}
