package coherence

import "math"
import "sort"

// Solfeggio lists the reference frequencies accepted by ValidFrequency.
var Solfeggio = map[string]float64{
	"foundation": 174.0,
	"quantum":    285.0,
	"liberation": 396.0,
	"resonance":  417.0,
	"love":       528.0,
	"connection": 639.0,
	"awakening":  741.0,
	"intuition":  852.0,
	"divine":     963.0,
}

// Ratios lists the frequency ratios treated as perfect harmonic
// relationships by HarmonicResonance.
var Ratios = map[string]float64{
	"golden": 1.618033988749,
	"silver": 2.414213562373,
	"bronze": 3.302775637732,
	"octave": 2.0,
	"fifth":  1.5,
}

// ValidFrequency reports whether a frequency lies within tolerance of a
// Solfeggio reference frequency.
func ValidFrequency(freq, tolerance float64) bool {
	for _, ref := range Solfeggio {
		if math.Abs(freq-ref) <= tolerance {
			return true
		}
	}
	return false
}

// HarmonicResonance scores the harmonic relationship between two
// frequencies. A recognized ratio scores 1.0, otherwise the score decays
// with relative frequency distance. Zero frequencies score 0.
func HarmonicResonance(freq1, freq2 float64) float64 {
	if freq1 == 0 || freq2 == 0 {
		return 0.0
	}

	ratio := math.Max(freq1, freq2) / math.Min(freq1, freq2)
	for _, ref := range Ratios {
		if math.Abs(ratio-ref) < 0.01 {
			return 1.0
		}
	}

	resonance := 1.0 - math.Abs(freq1-freq2)/math.Max(freq1, freq2)
	if resonance < 0 {
		return 0.0
	}
	return resonance
}

// Network is a registry of named nodes with resonance frequencies and the
// pairs that have been coupled between them.
type Network struct {
	BaseFreq float64

	nodes map[string]float64
	pairs map[[2]string]bool
}

// NewNetwork creates an empty Network locked to a base frequency.
func NewNetwork(baseFreq float64) *Network {
	return &Network{
		BaseFreq: baseFreq,
		nodes:    make(map[string]float64),
		pairs:    make(map[[2]string]bool),
	}
}

// Register adds a node with its resonance frequency, replacing any
// previous registration under the same name.
func (n *Network) Register(name string, freq float64) {
	n.nodes[name] = freq
}

// Pair couples two registered nodes. Unknown nodes are ignored.
func (n *Network) Pair(name1, name2 string) bool {
	if _, ok := n.nodes[name1]; !ok {
		return false
	}
	if _, ok := n.nodes[name2]; !ok {
		return false
	}
	if name2 < name1 {
		name1, name2 = name2, name1
	}
	if name1 == name2 {
		return false
	}
	n.pairs[[2]string{name1, name2}] = true
	return true
}

// Nodes returns the registered node names in sorted order.
func (n *Network) Nodes() []string {
	names := make([]string, 0, len(n.nodes))
	for name := range n.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Coherence blends the frequency spread, the pair coverage and the base
// frequency alignment of the network into a single score in [0, 1].
// An empty network scores 0.
func (n *Network) Coherence() float64 {
	if len(n.nodes) == 0 {
		return 0.0
	}

	var mean float64
	for _, freq := range n.nodes {
		mean += freq
	}
	mean /= float64(len(n.nodes))

	var variance float64
	for _, freq := range n.nodes {
		variance += (freq - mean) * (freq - mean)
	}
	variance /= float64(len(n.nodes))

	freqCoherence := 1.0 / (1.0 + variance/(mean*mean))

	possible := len(n.nodes) * (len(n.nodes) - 1) / 2
	if possible < 1 {
		possible = 1
	}
	pairCoverage := float64(len(n.pairs)) / float64(possible)

	alignment := 0.5
	if math.Abs(mean-n.BaseFreq) < 10.0 {
		alignment = 1.0
	}

	coherence := freqCoherence*0.4 + pairCoverage*0.3 + alignment*0.3
	if coherence > 1.0 {
		return 1.0
	}
	return coherence
}
