package types

// Tier identifies a model capability level. The fast tier is cheap and
// low-latency; the capable tier is the fallback when the fast tier fails.
type Tier string

const (
	TierFast    Tier = "fast"
	TierCapable Tier = "capable"
)

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}
