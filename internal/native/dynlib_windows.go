//go:build windows

package native

import (
	"syscall"

	"golang.org/x/sys/windows"
)

func dlopen(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	return uintptr(h), err
}

func dlsym(handle uintptr, symbol string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), symbol)
}

func dlclose(handle uintptr) error {
	return windows.FreeLibrary(windows.Handle(handle))
}

func syscallN(addr uintptr, args ...uintptr) {
	syscall.SyscallN(addr, args...)
}
