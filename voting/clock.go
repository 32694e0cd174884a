package voting

import "time"

// Clock abstracts wall-clock time so the opening gate and submission
// timestamps are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default runtime clock. Local time, because the stored
// timestamps and the opening instant are both local date-times.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// TimestampLayout is the format used for stored submission timestamps and for
// the opening instant in messages and config.
const TimestampLayout = "2006-01-02 15:04:05"
