package entities

// Stage is one named step of the fixed fulfillment pipeline a video-call
// engagement walks through. The order below is the business order and is not
// configurable.

type Stage string

const (
	StageQuotation Stage = "quotation"
	StageProfiling Stage = "profiling"
	StagePayment   Stage = "payment"
	StageQC        Stage = "qc"
	StagePackaging Stage = "packaging"
	StageDispatch  Stage = "dispatch"
)

// StageOrder is the canonical pipeline order. A stage may only complete after
// every stage before it in this slice has completed.
var StageOrder = []Stage{
	StageQuotation,
	StageProfiling,
	StagePayment,
	StageQC,
	StagePackaging,
	StageDispatch,
}

type StageStatus string

const (
	StageStatusNotStarted StageStatus = "not_started"
	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in_progress"
	StageStatusCompleted  StageStatus = "completed"
)

func KnownStage(s Stage) bool {
	return StageIndex(s) >= 0
}

// StageIndex returns the position of s in StageOrder, or -1 when unknown.
func StageIndex(s Stage) int {
	for i, stage := range StageOrder {
		if stage == s {
			return i
		}
	}
	return -1
}

// NextStage returns the stage following s and true, or false when s is the
// terminal stage (or unknown).
func NextStage(s Stage) (Stage, bool) {
	i := StageIndex(s)
	if i < 0 || i == len(StageOrder)-1 {
		return "", false
	}
	return StageOrder[i+1], true
}

func KnownStageStatus(s StageStatus) bool {
	switch s {
	case StageStatusNotStarted, StageStatusPending, StageStatusInProgress, StageStatusCompleted:
		return true
	}
	return false
}
