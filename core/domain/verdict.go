package domain

// VerdictStage identifies which classifier stage produced a verdict.
type VerdictStage string

const (
	// StageThematic is the 1-10 scoring stage.
	StageThematic VerdictStage = "thematic"
	// StageConfirmation is the strict yes/no keyword confirmation stage.
	StageConfirmation VerdictStage = "confirmation"
)

// Verdict is the outcome of a single relevance-filter stage.
type Verdict struct {
	Stage  VerdictStage
	Passed bool
	// Score is only meaningful for the thematic stage.
	Score  int
	Reason string
}
