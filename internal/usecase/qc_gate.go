package usecase

// Required QC checklist keys for the jewellery domain. Unknown keys in a
// submitted checklist are ignored for gating but persisted as part of the QC
// detail record.
var RequiredQCChecks = []string{
	"pieces_checked",
	"chains_checked",
	"dori_checked",
}

// CanCompleteQC reports whether the QC stage may be completed: every required
// check must be present and true. A missing required key counts as false.
//
// The gate is advisory for the UI edge; the workflow engine itself only
// enforces stage ordering and trusts the checklist it is handed.
func CanCompleteQC(checklist map[string]bool) bool {
	for _, key := range RequiredQCChecks {
		if !checklist[key] {
			return false
		}
	}
	return true
}
