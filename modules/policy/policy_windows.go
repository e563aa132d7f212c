//go:build windows

package policy

import (
	"os"
	"path/filepath"
)

// No portable access(2)-style probe exists on windows without x/sys/unix;
// readable/writable fall back to actually attempting the operation.

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func writable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		probe := filepath.Join(path, ".hugemv-write-probe")
		f, err := os.OpenFile(probe, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return false
		}
		f.Close()
		os.Remove(probe)
		return true
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
