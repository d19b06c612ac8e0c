package protocol

// Allocation limits to keep a malicious length prefix from forcing large
// allocations.
const (
	// DefaultMaxAllocation is the default maximum string size (64KB, one
	// full frame payload).
	DefaultMaxAllocation = MaxPayloadSize

	// HardMaxAllocation caps any configured allocation limit (16MB).
	HardMaxAllocation = 16 * 1024 * 1024

	// MaxCollectionCount is the maximum number of mutations in one batch.
	MaxCollectionCount = 100_000
)

// Limits configures a Decoder.
type Limits struct {
	// MaxAllocation is the largest string the decoder will materialize.
	MaxAllocation int

	// MaxCollection is the largest collection count the decoder accepts.
	MaxCollection int
}

// DefaultLimits returns the limits used by NewDecoder.
func DefaultLimits() Limits {
	return Limits{
		MaxAllocation: DefaultMaxAllocation,
		MaxCollection: MaxCollectionCount,
	}
}

// normalize fills zero fields with defaults and clamps to the hard ceiling.
func (l Limits) normalize() Limits {
	if l.MaxAllocation <= 0 {
		l.MaxAllocation = DefaultMaxAllocation
	}
	if l.MaxAllocation > HardMaxAllocation {
		l.MaxAllocation = HardMaxAllocation
	}
	if l.MaxCollection <= 0 || l.MaxCollection > MaxCollectionCount {
		l.MaxCollection = MaxCollectionCount
	}
	return l
}
