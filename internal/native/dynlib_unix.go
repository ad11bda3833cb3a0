//go:build linux || darwin

package native

import "github.com/ebitengine/purego"

func dlopen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func dlsym(handle uintptr, symbol string) (uintptr, error) {
	return purego.Dlsym(handle, symbol)
}

func dlclose(handle uintptr) error {
	return purego.Dlclose(handle)
}

func syscallN(addr uintptr, args ...uintptr) {
	purego.SyscallN(addr, args...)
}
