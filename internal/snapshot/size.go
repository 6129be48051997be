package snapshot

import "fmt"

var sizeUnits = []string{"", "K", "M", "G", "T", "P"}

// FormatSize renders a byte count in the largest 1024-based unit that keeps
// the value below 1024, e.g. 1536 -> "1.50KB". Values past the petabyte
// range stay in P.
func FormatSize(b uint64) string {
	v := float64(b)
	for i, unit := range sizeUnits {
		if v < 1024 || i == len(sizeUnits)-1 {
			return fmt.Sprintf("%.2f%sB", v, unit)
		}
		v /= 1024
	}
	return ""
}

const bytesPerGB = 1024 * 1024 * 1024

func toGB(b uint64) float64 {
	return float64(b) / bytesPerGB
}
