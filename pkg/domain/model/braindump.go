package model

// BrainDumpResult is the output of one ingestion call: a short summary of
// the whole input plus the extracted actions (possibly empty). It is
// constructed once by the response normalizer and never mutated after.
type BrainDumpResult struct {
	Summary string   `json:"summary"`
	Actions []Action `json:"actions"`
}
