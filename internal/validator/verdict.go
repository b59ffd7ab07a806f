package validator

// Verdict is the outcome of one validation run.
type Verdict string

const (
	// VerdictMatch means the serial from the code payload appears in the
	// recognized text.
	VerdictMatch Verdict = "match"
	// VerdictMismatch means both modalities detected something but the
	// serial does not appear in the recognized text.
	VerdictMismatch Verdict = "mismatch"
	// VerdictIncompleteNoDetection means neither modality found anything.
	VerdictIncompleteNoDetection Verdict = "incomplete_no_detection"
	// VerdictIncompletePartial means exactly one modality found something;
	// Result.DetectedSide names which.
	VerdictIncompletePartial Verdict = "incomplete_partial"
)

// Side names which modality produced results in a partial detection.
type Side string

const (
	SideText Side = "text"
	SideCode Side = "code"
)
