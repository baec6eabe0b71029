package quotes

import (
	"math/rand"
	"time"
)

// Default is the fixed quote list shown by the widget.
var Default = []string{
	"The only way to do great work is to love what you do. - Steve Jobs",
	"Success is not final, failure is not fatal: it is the courage to continue that counts. - Winston Churchill",
	"Believe you can and you're halfway there. - Theodore Roosevelt",
	"The future belongs to those who believe in the beauty of their dreams. - Eleanor Roosevelt",
	"Strive not to be a success, but rather to be of value. - Albert Einstein",
}

// Rotator picks a random quote at start and again every Every ticks.
// Consecutive picks may repeat.
type Rotator struct {
	quotes  []string
	every   int
	elapsed int
	rng     *rand.Rand
}

// NewRotator creates a rotator over quotes. A nil rng is seeded from the clock.
func NewRotator(quotes []string, every int, rng *rand.Rand) *Rotator {
	if len(quotes) == 0 {
		quotes = Default
	}
	if every <= 0 {
		every = 300
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Rotator{
		quotes: append([]string(nil), quotes...),
		every:  every,
		rng:    rng,
	}
}

// Start resets the accumulated time and returns the first quote.
func (rotator *Rotator) Start() string {
	rotator.elapsed = 0
	return rotator.pick()
}

// Advance accounts for one elapsed tick and returns a new quote when the
// rotation period has passed.
func (rotator *Rotator) Advance() (string, bool) {
	rotator.elapsed++
	if rotator.elapsed < rotator.every {
		return "", false
	}
	rotator.elapsed = 0
	return rotator.pick(), true
}

func (rotator *Rotator) pick() string {
	return rotator.quotes[rotator.rng.Intn(len(rotator.quotes))]
}
