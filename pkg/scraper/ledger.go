package scraper

// Ledger is the set of absolute image URLs downloaded during one run.
// It only grows, and only successful downloads are recorded.
type Ledger struct {
	urls map[string]struct{}
}

// NewLedger returns an empty ledger
func NewLedger() *Ledger {
	return &Ledger{urls: make(map[string]struct{})}
}

// Has reports whether url was already downloaded
func (l *Ledger) Has(url string) bool {
	_, ok := l.urls[url]
	return ok
}

// Add records url as downloaded
func (l *Ledger) Add(url string) {
	l.urls[url] = struct{}{}
}

// Len returns the number of recorded URLs
func (l *Ledger) Len() int {
	return len(l.urls)
}
