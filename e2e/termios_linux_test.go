//go:build linux

package e2e

import "golang.org/x/sys/unix"

const ioctlReadTermios = unix.TCGETS
