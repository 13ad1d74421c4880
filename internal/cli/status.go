package cli

import "fmt"

// Commands surface results as one of three statuses: success and warning
// lines are printed directly, errors are returned so cobra reports them and
// the process exits non-zero.

func successf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

func warnf(format string, args ...any) {
	fmt.Printf("Warning: "+format+"\n", args...)
}
