//go:build linux

package processor

import (
	"os"
	"syscall"
)

// creationTime approximates the file creation time. Linux does not expose
// the birth time through os.FileInfo, so the inode change time is the
// closest stable stand-in; modification time is the fallback.
func creationTime(info os.FileInfo) int64 {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		return st.Ctim.Sec
	}
	return info.ModTime().Unix()
}
