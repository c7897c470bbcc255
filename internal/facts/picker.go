// Package facts picks short space facts for the fact-of-the-day widget.
package facts

import (
	"math/rand/v2"
	"sync"
	"time"
)

// DefaultPrefix is the decorative marker written before each fact.
const DefaultPrefix = "🛰️"

// Display receives the text of the fact being shown.
type Display interface {
	SetFactText(text string)
}

// Space is the built-in fact list.
var Space = []string{
	"Space is completely silent—sound can’t travel in a vacuum.",
	"A day on Venus is longer than a year on Venus.",
	"There are more stars in the universe than grains of sand on Earth.",
	"Neutron stars can spin 600 times per second.",
	"Footprints on the Moon can last for millions of years.",
	"The Sun makes up about 99.8% of our solar system’s mass.",
	"Jupiter’s Great Red Spot is a storm bigger than Earth.",
	"One day on Mercury includes two sunrises!",
	"The International Space Station orbits Earth about every 90 minutes.",
	"Light from the Sun takes about 8 minutes to reach Earth.",
	"Saturn could float in water because it’s so light (if you had a big enough tub!).",
	"Mars has the tallest volcano in the solar system—Olympus Mons.",
}

// Config configures a Picker.
type Config struct {
	// Seed for the random source. Zero seeds from the clock.
	Seed int64

	// Prefix is written before each fact. Empty uses DefaultPrefix.
	Prefix string
}

// Picker shows a random fact that never repeats the previous one.
type Picker struct {
	mu      sync.Mutex
	facts   []string
	last    int
	rng     *rand.Rand
	prefix  string
	display Display
}

// NewPicker creates a picker over a copy of facts. display may be nil,
// in which case ShowRandomFact does nothing.
func NewPicker(facts []string, display Display, cfg Config) *Picker {
	seed := uint64(cfg.Seed)
	if cfg.Seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Picker{
		facts:   append([]string(nil), facts...),
		last:    -1,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		prefix:  prefix,
		display: display,
	}
}

// ShowRandomFact writes a random fact to the display and returns the
// text written. It returns false when there is no display or no facts.
func (p *Picker) ShowRandomFact() (string, bool) {
	if p.display == nil {
		return "", false
	}

	p.mu.Lock()
	if len(p.facts) == 0 {
		p.mu.Unlock()
		return "", false
	}
	index := p.rng.IntN(len(p.facts))
	if len(p.facts) > 1 && index == p.last {
		index = (index + 1) % len(p.facts)
	}
	p.last = index
	text := p.prefix + " " + p.facts[index]
	p.mu.Unlock()

	p.display.SetFactText(text)
	return text, true
}

// LastIndex returns the index of the fact shown last, or -1.
func (p *Picker) LastIndex() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}
