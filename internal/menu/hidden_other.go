//go:build !windows

package menu

import "io/fs"

func hasHiddenAttribute(fs.DirEntry) bool { return false }
