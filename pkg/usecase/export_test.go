package usecase

import "time"

var (
	NormalizeResult  = normalizeResult
	StripFences      = stripFences
	CosineSimilarity = cosineSimilarity
)

// SetClock pins the time source of the brain dump and answer flows.
func (uc *UseCases) SetClock(now func() time.Time) {
	uc.BrainDump.now = now
	uc.Answer.now = now
}
