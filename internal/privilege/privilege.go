package privilege

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/mmr-tortoise/system-cleanup/internal/model"
)

// EffectiveUID returns the effective user id of the current process.
func EffectiveUID() int {
	return unix.Geteuid()
}

// Check returns a model.KindPrivilege error unless euid is 0.
func Check(euid int) error {
	if euid != 0 {
		return model.WrapCLIError(model.KindPrivilege, "this program must be run as root",
			fmt.Errorf("effective uid is %d", euid))
	}
	return nil
}
