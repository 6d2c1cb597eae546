package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func withPlainOutput(t *testing.T) {
	saved := []string{colorReset, colorBold, colorRed, colorGreen, colorYellow,
		colorBlue, colorDim, clearEOL}
	savedUnicode := useUnicode
	initColors(true)
	t.Cleanup(func() {
		colorReset, colorBold, colorRed, colorGreen = saved[0], saved[1],
			saved[2], saved[3]
		colorYellow, colorBlue, colorDim, clearEOL = saved[4], saved[5],
			saved[6], saved[7]
		useUnicode = savedUnicode
	})
}

func sampleReport() *benchReport {
	stdDev := 0.25
	mbStdDev := 256.0
	return &benchReport{
		RunID: "0b8f3c1e-7a52-4d0e-9a57-3f5d7c2b9e10",
		Target: targetInfo{MountPoint: "/data", Device: "/dev/sdb1",
			FSType: "ext4", DiskType: "hdd"},
		Config: benchConfig{TargetPath: "/data", BlockSize: 100 << 20,
			TotalSize: 1 << 30, Iterations: 10},
		Write: passStatistics{
			Samples: 10,
			Elapsed: 2 * time.Second,
			GBps: throughputStats{Mean: 1.5, Median: 1.5, Min: 1, Max: 2,
				StdDev: &stdDev},
			MBps: throughputStats{Mean: 1536, Median: 1536, Min: 1024,
				Max: 2048, StdDev: &mbStdDev},
		},
		Read: passStatistics{
			Samples:  1,
			Excluded: 1,
			Elapsed:  time.Second,
			GBps:     throughputStats{Mean: 0.1, Median: 0.1, Min: 0.1, Max: 0.1},
			MBps:     throughputStats{Mean: 102.4, Median: 102.4, Min: 102.4, Max: 102.4},
		},
	}
}

func TestProgressBar(t *testing.T) {
	withPlainOutput(t)
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "[          ] 0%"},
		{0.5, "[#####     ] 50%"},
		{1, "[##########] 100%"},
		{2, "[##########] 100%"},
	}
	for _, test := range tests {
		if got := progressBar(test.fraction, 12); got != test.want {
			t.Errorf("progressBar(%v) = %q, want %q", test.fraction, got,
				test.want)
		}
	}
}

func TestProgressPrinter(t *testing.T) {
	withPlainOutput(t)
	var buf bytes.Buffer
	progress := progressPrinter(&buf)
	progress("write", newSample(0, 1<<30, time.Second), 1, 2)
	if strings.Contains(buf.String(), "\n") {
		t.Errorf("line terminated before the pass ended: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "1.000 GB/s (1024 MB/s)") {
		t.Errorf("missing throughput in %q", buf.String())
	}
	progress("write", newSample(1, 4096, 0), 2, 2)
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("line not terminated after the last sample: %q", out)
	}
	if !strings.Contains(out, "n/a") {
		t.Errorf("invalid sample not shown as n/a: %q", out)
	}
}

func TestPrintReport(t *testing.T) {
	withPlainOutput(t)
	var buf bytes.Buffer
	printReport(&buf, sampleReport(), 8<<30)
	out := buf.String()
	for _, want := range []string{
		"Target: /data (/dev/sdb1, ext4, HDD)",
		"Sequential Write",
		"Sequential Read",
		"1.500 GB/s (1,536 MB/s)",
		"0.250 GB/s (256 MB/s)",
		"page cache",
		"Read: 1 of 2 blocks",
		"Excellent", // 1536 MB/s on an hdd
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report lacks %q:\n%s", want, out)
		}
	}
	readLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Sequential Read") {
			readLine = line
		}
	}
	if !strings.Contains(readLine, " - |") {
		t.Errorf("undefined standard deviation not shown as '-': %q", readLine)
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := printJSON(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["run_id"] != sampleReport().RunID {
		t.Errorf("run_id = %v", decoded["run_id"])
	}
	read := decoded["read"].(map[string]interface{})
	gbps := read["gbps"].(map[string]interface{})
	if _, ok := gbps["stddev"]; ok {
		t.Error("undefined standard deviation encoded")
	}
	write := decoded["write"].(map[string]interface{})
	if write["gbps"].(map[string]interface{})["stddev"] != 0.25 {
		t.Errorf("write stddev = %v", write["gbps"])
	}
}

func TestRateSpeed(t *testing.T) {
	tests := []struct {
		mbps     float64
		diskType string
		want     string
	}{
		{2500, "nvme", "Excellent"},
		{600, "NVME", "Fair"},
		{120, "hdd", "Good"},
		{50, "", "Slow"},
		{350, "unknown", "Good"},
	}
	for _, test := range tests {
		if got := rateSpeed(test.mbps, test.diskType); got != test.want {
			t.Errorf("rateSpeed(%v, %q) = %q, want %q", test.mbps,
				test.diskType, got, test.want)
		}
	}
}

func TestVisibleLen(t *testing.T) {
	if n := visibleLen("\033[92mGood\033[0m"); n != 4 {
		t.Errorf("visibleLen = %d, want 4", n)
	}
}
