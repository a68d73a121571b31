//go:build unix

package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// NewTcellFromTty creates a driver on an already opened tty
func NewTcellFromTty(tty tcell.Tty) (*TcellDriver, error) {
	s, err := tcell.NewTerminfoScreenFromTty(tty)
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return newTcellDriver(s), nil
}

// NewTcellOnDevice creates a driver on the tty device at path (e.g. /dev/pts/3)
func NewTcellOnDevice(path string) (*TcellDriver, error) {
	tty, err := tcell.NewDevTtyFromDev(path)
	if err != nil {
		return nil, fmt.Errorf("open tty %s: %w", path, err)
	}
	return NewTcellFromTty(tty)
}
