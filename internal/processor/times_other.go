//go:build !linux

package processor

import "os"

func creationTime(info os.FileInfo) int64 {
	return info.ModTime().Unix()
}
