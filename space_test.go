package main

import (
	"errors"
	"testing"
)

func fixedFreeSpace(free uint64) freeSpaceFunc {
	return func(string) (uint64, error) { return free, nil }
}

func TestCheckSpaceBoundary(t *testing.T) {
	tests := []struct {
		required uint64
		wantErr  bool
	}{
		{0, false},
		{999, false},
		{1000, true}, // equal counts as insufficient
		{1001, true},
	}
	for _, test := range tests {
		err := checkSpace("/data", test.required, fixedFreeSpace(1000))
		if test.wantErr && !errors.Is(err, errInsufficientSpace) {
			t.Errorf("checkSpace(%d of 1000) error = %v, want errInsufficientSpace",
				test.required, err)
		}
		if !test.wantErr && err != nil {
			t.Errorf("checkSpace(%d of 1000): %s", test.required, err)
		}
	}
}

func TestCheckSpaceQueryError(t *testing.T) {
	queryErr := errors.New("statfs failed")
	err := checkSpace("/data", 1, func(string) (uint64, error) {
		return 0, queryErr
	})
	if !errors.Is(err, queryErr) {
		t.Errorf("error = %v, want wrapped query error", err)
	}
	if errors.Is(err, errInsufficientSpace) {
		t.Error("query failure reported as insufficient space")
	}
}

func TestDiskFreeSpace(t *testing.T) {
	free, err := diskFreeSpace(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if free == 0 {
		t.Error("no free space reported for the test directory")
	}
	if err := checkSpace(t.TempDir(), 1, nil); err != nil {
		t.Errorf("checkSpace with the real filesystem: %s", err)
	}
}
