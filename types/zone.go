package types

// Zone is one independently addressed LED strip region.
type Zone uint8

const (
	ZoneCyclotron Zone = iota
	ZonePowerCell
	ZoneSyncGenerator
	ZoneSwitchboard

	NumZones = 4
)

func (z Zone) String() string {
	switch z {
	case ZoneCyclotron:
		return "cyclotron"
	case ZonePowerCell:
		return "powercell"
	case ZoneSyncGenerator:
		return "syncgen"
	case ZoneSwitchboard:
		return "switchboard"
	default:
		return "unknown"
	}
}

// Zones lists every zone in wiring order.
func Zones() [NumZones]Zone {
	return [NumZones]Zone{ZoneCyclotron, ZonePowerCell, ZoneSyncGenerator, ZoneSwitchboard}
}
