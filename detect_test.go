package main

import "testing"

func TestClassifyDisk(t *testing.T) {
	tests := []struct {
		device, fsType, want string
	}{
		{"server:/export", "nfs4", "nfs"},
		{"//host/share", "cifs", "nfs"},
		{"", "ext4", ""},
		{"tmpfs", "tmpfs", "ssd"},
	}
	for _, test := range tests {
		if got := classifyDisk(test.device, test.fsType); got != test.want {
			t.Errorf("classifyDisk(%q, %q) = %q, want %q", test.device,
				test.fsType, got, test.want)
		}
	}
}

func TestGuessDiskType(t *testing.T) {
	tests := []struct {
		device, want string
	}{
		{"/dev/nvme0n1p1", "nvme"},
		{"/dev/disk/by-id/usb-Kingston", "usb"},
		{"fileserver:/home", "nfs"},
		{"/dev/sda1", "ssd"},
	}
	for _, test := range tests {
		if got := guessDiskType(test.device); got != test.want {
			t.Errorf("guessDiskType(%q) = %q, want %q", test.device, got,
				test.want)
		}
	}
}

func TestDescribeTarget(t *testing.T) {
	mountPoint, err := resolveMountPoint(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	info := describeTarget(mountPoint, testLogger{t})
	if info.MountPoint != mountPoint {
		t.Errorf("MountPoint = %q, want %q", info.MountPoint, mountPoint)
	}
	t.Logf("%+v", info)
}
