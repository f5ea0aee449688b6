package git

import "time"

// SetClock replaces the timestamp source.
func (i *Inspector) SetClock(now func() time.Time) {
	i.now = now
}
