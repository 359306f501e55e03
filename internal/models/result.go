package models

// Mode tells where a piece of data came from.
type Mode int

const (
	// ModeLive data was retrieved from the remote API.
	ModeLive Mode = iota
	// ModeSimulated data was generated locally after retrieval failed.
	ModeSimulated
)

func (m Mode) String() string {
	if m == ModeSimulated {
		return "simulated"
	}

	return "live"
}

// Result wraps retrieved data with an explicit origin tag.
type Result[T any] struct {
	Mode Mode
	Data T
}

// Live tags data as retrieved from the remote API.
func Live[T any](data T) Result[T] {
	return Result[T]{Mode: ModeLive, Data: data}
}

// Simulated tags data as locally generated.
func Simulated[T any](data T) Result[T] {
	return Result[T]{Mode: ModeSimulated, Data: data}
}

// IsSimulated reports whether the data is synthetic.
func (r Result[T]) IsSimulated() bool {
	return r.Mode == ModeSimulated
}
