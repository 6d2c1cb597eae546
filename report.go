package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes.
var (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorRed    = "\033[91m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorBlue   = "\033[94m"
	colorDim    = "\033[2m"
	clearEOL    = "\033[K"
	useUnicode  = true
)

// Box-drawing characters (Unicode defaults, ASCII fallback).
var (
	boxTL = "┌"
	boxTR = "┐"
	boxBL = "└"
	boxBR = "┘"
	boxH  = "─"
	boxV  = "│"
	boxML = "├"
	boxMR = "┤"
	boxMT = "┬"
	boxMB = "┴"
	boxMM = "┼"
)

// initColors disables colours when noColor is true or stdout is not a terminal.
// It also sets the box-drawing characters to ASCII when Unicode is unavailable.
func initColors(noColor bool) {
	if noColor || !isTerminal() {
		colorReset = ""
		colorBold = ""
		colorRed = ""
		colorGreen = ""
		colorYellow = ""
		colorBlue = ""
		colorDim = ""
		clearEOL = ""
		useUnicode = false
	}

	// Check for a known-limited TERM that cannot render Unicode.
	termName := os.Getenv("TERM")
	if termName == "dumb" || termName == "linux" {
		useUnicode = false
	}

	if !useUnicode {
		boxTL = "+"
		boxTR = "+"
		boxBL = "+"
		boxBR = "+"
		boxH = "-"
		boxV = "|"
		boxML = "+"
		boxMR = "+"
		boxMT = "+"
		boxMB = "+"
		boxMM = "+"
	}
}

// isTerminal reports whether stdout is connected to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ---------------------------------------------------------------------------
// Rating system
// ---------------------------------------------------------------------------

type ratingThreshold struct {
	threshold float64
	label     string
}

// Thresholds are in MB/s.
var speedRatings = map[string][]ratingThreshold{
	"nvme": {{2000, "Excellent"}, {1000, "Good"}, {500, "Fair"}, {0, "Slow"}},
	"ssd":  {{500, "Excellent"}, {300, "Good"}, {100, "Fair"}, {0, "Slow"}},
	"hdd":  {{150, "Excellent"}, {100, "Good"}, {50, "Fair"}, {0, "Slow"}},
	"usb":  {{300, "Excellent"}, {100, "Good"}, {30, "Fair"}, {0, "Slow"}},
	"nfs":  {{500, "Excellent"}, {100, "Good"}, {50, "Fair"}, {0, "Slow"}},
}

func rateSpeed(mbps float64, diskType string) string {
	thresholds, ok := speedRatings[strings.ToLower(diskType)]
	if !ok {
		thresholds = speedRatings["ssd"]
	}
	for _, t := range thresholds {
		if mbps >= t.threshold {
			return t.label
		}
	}
	return "Slow"
}

func ratingColor(rating string) string {
	switch rating {
	case "Excellent":
		return colorGreen
	case "Good":
		return colorBlue
	case "Fair":
		return colorYellow
	case "Slow":
		return colorRed
	default:
		return colorDim
	}
}

// ---------------------------------------------------------------------------
// Table printer
// ---------------------------------------------------------------------------

// printTable renders a bordered table to w.
// aligns is a slice of alignment chars: 'l' left, 'r' right, 'c' center.
func printTable(w io.Writer, headers []string, rows [][]string, aligns []byte) {
	cols := len(headers)
	if cols == 0 {
		return
	}

	// Compute column widths (content + 2 padding).
	widths := make([]int, cols)
	for i, h := range headers {
		if len(h) > widths[i] {
			widths[i] = len(h)
		}
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			vis := visibleLen(row[i])
			if vis > widths[i] {
				widths[i] = vis
			}
		}
	}
	for i := range widths {
		widths[i] += 2
	}

	hline := func(left, mid, right string) string {
		var sb strings.Builder
		sb.WriteString(left)
		for i, width := range widths {
			sb.WriteString(strings.Repeat(boxH, width))
			if i < cols-1 {
				sb.WriteString(mid)
			}
		}
		sb.WriteString(right)
		return sb.String()
	}

	cell := func(text string, width int, align byte) string {
		inner := width - 2
		pad := inner - visibleLen(text)
		if pad < 0 {
			pad = 0
		}
		switch align {
		case 'r':
			return " " + strings.Repeat(" ", pad) + text + " "
		case 'c':
			left := pad / 2
			right := pad - left
			return " " + strings.Repeat(" ", left) + text + strings.Repeat(" ", right) + " "
		default: // 'l'
			return " " + text + strings.Repeat(" ", pad) + " "
		}
	}

	dataRow := func(values []string, bold bool) string {
		var sb strings.Builder
		sb.WriteString(boxV)
		for i := 0; i < cols; i++ {
			v := ""
			if i < len(values) {
				v = values[i]
			}
			a := byte('l')
			if i < len(aligns) {
				a = aligns[i]
			}
			content := cell(v, widths[i], a)
			if bold {
				content = colorBold + content + colorReset
			}
			sb.WriteString(content)
			if i < cols-1 {
				sb.WriteString(boxV)
			}
		}
		sb.WriteString(boxV)
		return sb.String()
	}

	fmt.Fprintln(w, hline(boxTL, boxMT, boxTR))
	fmt.Fprintln(w, dataRow(headers, true))
	fmt.Fprintln(w, hline(boxML, boxMM, boxMR))
	for _, row := range rows {
		fmt.Fprintln(w, dataRow(row, false))
	}
	fmt.Fprintln(w, hline(boxBL, boxMB, boxBR))
}

// visibleLen returns the visible length of s, ignoring ANSI escape sequences.
func visibleLen(s string) int {
	n := 0
	inEsc := false
	for _, r := range s {
		if r == '\033' {
			inEsc = true
			continue
		}
		if inEsc {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
			continue
		}
		n++
	}
	return n
}

// ---------------------------------------------------------------------------
// Progress bar
// ---------------------------------------------------------------------------

func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	inner := width - 2 // account for [ and ]
	if inner < 1 {
		inner = 1
	}
	filled := int(fraction * float64(inner))
	empty := inner - filled

	fillChar := "#"
	if useUnicode {
		fillChar = "\u2588" // █
	}

	pct := int(fraction * 100)
	return "[" + strings.Repeat(fillChar, filled) + strings.Repeat(" ", empty) + "] " + fmt.Sprintf("%d%%", pct)
}

func passLabel(pass string) string {
	switch pass {
	case "write":
		return "Sequential Write:"
	case "read":
		return "Sequential Read: "
	}
	return pass + ":"
}

// progressPrinter returns a progressFunc that redraws one status line per
// sample on w and terminates the line after the last sample of a pass.
func progressPrinter(w io.Writer) progressFunc {
	return func(pass string, sample throughputSample, done, total uint32) {
		frac := float64(done) / float64(total)
		speed := "      n/a"
		if sample.Valid {
			speed = fmt.Sprintf("%.3f GB/s (%.0f MB/s)", sample.GBps, sample.MBps)
		}
		fmt.Fprintf(w, "\r  %s  %s  %s%s", passLabel(pass),
			progressBar(frac, 24), speed, clearEOL)
		if done == total {
			fmt.Fprintln(w)
		}
	}
}

// ---------------------------------------------------------------------------
// Output helpers
// ---------------------------------------------------------------------------

func printHeader(w io.Writer) {
	fmt.Fprintln(w)
	title := fmt.Sprintf("DiskSpeed v%s", version)
	sub := "Sequential write & read throughput tester"
	fmt.Fprintf(w, "  %s%s%s\n", colorBold, title, colorReset)
	fmt.Fprintf(w, "  %s%s%s\n", colorDim, sub, colorReset)
	fmt.Fprintln(w)
}

func printSystemInfo(w io.Writer) {
	fmt.Fprintf(w, "  %sSystem: %s%s\n\n", colorDim, systemSummary(), colorReset)
}

func printRunInfo(w io.Writer, config benchConfig) {
	fmt.Fprintf(w, "  %sBlock size: %s | Iterations: %d", colorDim,
		formatSize(config.BlockSize), config.Iterations)
	if config.TotalSize > 0 {
		fmt.Fprintf(w, " | Test size: %s", formatSize(config.TotalSize))
	}
	fmt.Fprintf(w, "%s\n\n", colorReset)
}

func formatThroughput(gbps, mbps float64) string {
	return fmt.Sprintf("%.3f GB/s (%s MB/s)", gbps, formatFloat(mbps, 0))
}

func formatStdDev(stats passStatistics) string {
	if stats.GBps.StdDev == nil || stats.MBps.StdDev == nil {
		return "-"
	}
	return formatThroughput(*stats.GBps.StdDev, *stats.MBps.StdDev)
}

func printReport(w io.Writer, report *benchReport, memTotal uint64) {
	target := report.Target
	label := target.MountPoint
	if target.Device != "" {
		label += fmt.Sprintf(" (%s", target.Device)
		if target.FSType != "" {
			label += ", " + target.FSType
		}
		if target.DiskType != "" {
			label += ", " + strings.ToUpper(target.DiskType)
		}
		label += ")"
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %sTarget: %s%s\n", colorBold, label, colorReset)
	fmt.Fprintf(w, "  %sRun: %s%s\n", colorDim, report.RunID, colorReset)
	if report.DirectIO {
		fmt.Fprintf(w, "  %sNote: using direct I/O (bypassing OS cache)%s\n", colorDim, colorReset)
	} else {
		fmt.Fprintf(w, "  %sNote: using buffered I/O%s\n", colorDim, colorReset)
		if memTotal > report.Config.BlockSize {
			fmt.Fprintf(w, "  %sNote: block fits in RAM (%s), reads are likely served from the page cache%s\n",
				colorYellow, formatSize(memTotal), colorReset)
		}
	}
	fmt.Fprintln(w)

	passes := []struct {
		name  string
		stats passStatistics
	}{
		{"Write", report.Write},
		{"Read", report.Read},
	}
	headers := []string{"Test", "Mean", "Min", "Max", "Std dev", "Rating"}
	aligns := []byte{'l', 'r', 'r', 'r', 'r', 'c'}
	var rows [][]string
	for _, pass := range passes {
		s := pass.stats
		rating := rateSpeed(s.MBps.Mean, target.DiskType)
		rows = append(rows, []string{
			"Sequential " + pass.name,
			formatThroughput(s.GBps.Mean, s.MBps.Mean),
			formatThroughput(s.GBps.Min, s.MBps.Min),
			formatThroughput(s.GBps.Max, s.MBps.Max),
			formatStdDev(s),
			ratingColor(rating) + rating + colorReset,
		})
	}
	printTable(w, headers, rows, aligns)
	for _, pass := range passes {
		if pass.stats.Excluded > 0 {
			fmt.Fprintf(w, "  %s%s: %d of %d blocks completed too fast to time and were excluded%s\n",
				colorYellow, pass.name, pass.stats.Excluded,
				pass.stats.Excluded+pass.stats.Samples, colorReset)
		}
	}
	fmt.Fprintln(w)
}

func printJSON(w io.Writer, report *benchReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
