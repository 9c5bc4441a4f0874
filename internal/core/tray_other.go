//go:build !windows

package core

func (d *Desktop) startTray() {}

func (d *Desktop) stopTray() {}
