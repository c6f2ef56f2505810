//go:build !linux

package affinity

import "errors"

var errUnsupported = errors.New("affinity: CPU pinning is only supported on linux")

func pin(int) error {
	return errUnsupported
}
