//go:build !rp2040 && !rp2350

package platform

import (
	"protonpack-go/errcode"
	"protonpack-go/services/config"
	"protonpack-go/services/prop"
)

// Open has no board to bring up on the host; use cmd/propsim instead.
func Open(config.Profile) (prop.Hardware, error) {
	return prop.Hardware{}, &errcode.E{C: errcode.HardwareAbsent, Op: "platform.Open", Msg: "no board on this target"}
}
