package timer

import "time"

// Ticker is the periodic source driving a countdown.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type systemTicker struct {
	ticker *time.Ticker
}

func newSystemTicker(interval time.Duration) Ticker {
	return systemTicker{ticker: time.NewTicker(interval)}
}

func (source systemTicker) C() <-chan time.Time {
	return source.ticker.C
}

func (source systemTicker) Stop() {
	source.ticker.Stop()
}
