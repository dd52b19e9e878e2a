package board

// Side is the board wing a castle move targets.
type Side uint8

const (
	Kingside Side = iota
	Queenside
)

func (s Side) String() string {
	switch s {
	case Kingside:
		return "Kingside"
	case Queenside:
		return "Queenside"
	default:
		return ""
	}
}

func (s Side) Opposite() Side {
	return s ^ 1
}
