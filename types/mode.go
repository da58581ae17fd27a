package types

// Mode is the prop's operating mode. Exactly one is active at a time.
type Mode uint8

const (
	ModeOff Mode = iota
	ModeBooting
	ModeIdle
	ModeOverheat
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeBooting:
		return "booting"
	case ModeIdle:
		return "idle"
	case ModeOverheat:
		return "overheat"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool { return m <= ModeOverheat }

// Inputs is one debounced sample of the two digital inputs.
type Inputs struct {
	PowerOn     bool
	FirePressed bool
}
