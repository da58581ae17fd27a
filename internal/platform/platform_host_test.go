//go:build !rp2040 && !rp2350

package platform

import (
	"testing"

	"protonpack-go/errcode"
	"protonpack-go/services/config"
)

func TestHostHasNoBoard(t *testing.T) {
	if _, err := Open(config.Default()); errcode.Of(err) != errcode.HardwareAbsent {
		t.Fatalf("err=%v", err)
	}
}
