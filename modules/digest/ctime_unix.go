//go:build !windows

package digest

import (
	"os"
	"syscall"
	"time"
)

func ctime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), nil
	}
	return time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec), nil
}
