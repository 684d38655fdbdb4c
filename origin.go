package console

import "time"

func newTimeOrigin(now func() time.Time) timeOrigin {
	if now == nil {
		now = time.Now
	}
	return timeOrigin{start: now(), now: now}
}

// Time passed since the origin, never negative.
func (o *timeOrigin) elapsed() time.Duration {
	d := o.now().Sub(o.start)
	if d < 0 {
		d = 0
	}
	return d
}
