//go:build !lfu_debug

package lfu

const debugging = false

func assert(bool, string) {}
