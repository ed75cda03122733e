package round

import "fmt"

// FormatTimer renders whole seconds as m:ss. Negative input renders 0:00.
func FormatTimer(secs int) string {
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
