//go:build !linux

package main

// diskTypePlatform has no platform-specific source here; classifyDisk falls
// back to guessDiskType.
func diskTypePlatform(device string) string {
	return ""
}
