//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import "golang.org/x/sys/unix"

func disableEcho(fd uintptr) (func(), error) {
	descriptor := int(fd)
	current, err := unix.IoctlGetTermios(descriptor, termiosGetRequest)
	if err != nil {
		return nil, err
	}
	original := *current
	silenced := original
	silenced.Lflag &^= unix.ECHO
	if err := unix.IoctlSetTermios(descriptor, termiosSetRequest, &silenced); err != nil {
		return nil, err
	}
	return func() {
		_ = unix.IoctlSetTermios(descriptor, termiosSetRequest, &original)
	}, nil
}
