//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

const (
	highPriorityClass        = 0x00000080
	aboveNormalPriorityClass = 0x00008000

	processPowerThrottling               = 4
	processPowerThrottlingExecutionSpeed = 0x1
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentProcess     = kernel32.NewProc("GetCurrentProcess")
	procSetPriorityClass      = kernel32.NewProc("SetPriorityClass")
	procSetProcessInformation = kernel32.NewProc("SetProcessInformation")
)

// raisePriority gives the search more CPU time: high priority class, falling
// back to above normal, and no power throttling (Efficiency Mode).
func raisePriority() error {
	handle, _, _ := procGetCurrentProcess.Call()

	// REALTIME can freeze the system.
	if ret, _, err := procSetPriorityClass.Call(handle, highPriorityClass); ret == 0 {
		if ret, _, _ := procSetPriorityClass.Call(handle, aboveNormalPriorityClass); ret == 0 {
			return err
		}
	}

	state := struct {
		Version     uint32
		ControlMask uint32
		StateMask   uint32
	}{Version: 1, ControlMask: processPowerThrottlingExecutionSpeed}

	// Available on Windows 10 1709+.
	if ret, _, err := procSetProcessInformation.Call(
		handle,
		processPowerThrottling,
		uintptr(unsafe.Pointer(&state)),
		unsafe.Sizeof(state),
	); ret == 0 {
		return err
	}
	return nil
}
