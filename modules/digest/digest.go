// Package digest computes the to-pattern's source properties: content
// digests and file timestamps. Each function reads or stats the source path
// exactly once; the caller (modules/pattern/to) is responsible for
// memoizing repeated references within one resolution.
package digest

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/zeebo/blake3"
)

// B3Sum returns the lowercase hex BLAKE3 digest of the file at path.
func B3Sum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	h := blake3.New()
	_, _ = h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Md5Sum returns the lowercase hex MD5 digest of the file at path.
func Md5Sum(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := md5.Sum(data)
	return hex.EncodeToString(sum[:]), nil
}

// MTime returns the file's last-modification time.
func MTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// CTime returns the file's status-change time on platforms that expose one
// (see ctime_unix.go), falling back to the modification time elsewhere.
func CTime(path string) (time.Time, error) {
	return ctime(path)
}

// FormatTime renders t using a strftime-style format string, the same
// dialect the source uses for `{!mtime[:FMT]}`/`{!ctime[:FMT]}`.
func FormatTime(t time.Time, format string) string {
	return strftime.Format(format, t)
}

// DefaultTimeFormat is used when a timestamp property omits an explicit
// format argument.
const DefaultTimeFormat = "%F-%X"
