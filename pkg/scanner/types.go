package scanner

import "runtime"

// Options controls a scan.
type Options struct {
	// Workers bounds the number of sources scanned concurrently (<= 0 = NumCPU).
	Workers int

	// CountOnly drops per-line results and keeps only the totals.
	CountOnly bool
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
