//go:build windows

package digest

import (
	"os"
	"time"
)

func ctime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
