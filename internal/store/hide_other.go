//go:build !windows

package store

func hideFile(string) {}
