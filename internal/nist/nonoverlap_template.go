package nist

import (
	"time"

	"gonum.org/v1/gonum/mathext"
)

// defaultTemplateLength is the template-length class NonOverlapping
// TemplateMatching sweeps by default: the richest class the fixed
// table in C6 covers (spec §9, "§4.7 template selection").
const defaultTemplateLength = 8

// NonOverlappingTemplateMatching is the non-overlapping template
// matching test (spec §4.7): it counts occurrences of a fixed
// aperiodic template across disjoint blocks, resetting the scan
// position on every match so occurrences never overlap.
//
// The reference implementation draws one template at random per
// call. This repo instead sweeps every template of templateLength
// (default 8, see defaultTemplateLength) and applies a
// Bonferroni-corrected threshold to each per-template P-value; use
// WithTemplate to run a single caller-chosen template instead.
type NonOverlappingTemplateMatching struct {
	templateLength int
	template       []int8
}

// NewNonOverlappingTemplateMatching returns the default sweep-mode
// test over defaultTemplateLength.
func NewNonOverlappingTemplateMatching() NonOverlappingTemplateMatching {
	return NonOverlappingTemplateMatching{templateLength: defaultTemplateLength}
}

// WithTemplate returns a single-template variant of the test that
// scans only for template, bypassing the Bonferroni sweep.
func WithTemplate(template []int8) NonOverlappingTemplateMatching {
	return NonOverlappingTemplateMatching{template: template}
}

// Name implements Test.
func (t NonOverlappingTemplateMatching) Name() string {
	return "non_overlapping_template_matching"
}

// IsEligible implements Test; always eligible.
func (NonOverlappingTemplateMatching) IsEligible(bits BitSequence) bool {
	return bits.Len() > 0
}

const nonOverlapBlocks = 8

// Execute implements Test.
func (t NonOverlappingTemplateMatching) Execute(bits BitSequence) Result {
	start := time.Now()

	if t.template != nil {
		score := nonOverlapScore(bits, t.template)
		return run(t.Name(), []float64{score}, start)
	}

	templates := templatesForLength(t.templateLength)
	alpha := Alpha / float64(len(templates))
	scores := make([]float64, len(templates))
	for i, tmpl := range templates {
		scores[i] = nonOverlapScore(bits, tmpl)
	}

	passed := true
	for _, s := range scores {
		if !(s >= alpha) {
			passed = false
			break
		}
	}
	return Result{Name: t.Name(), Passed: passed, Scores: scores, Elapsed: time.Since(start)}
}

// nonOverlapScore computes the single-template P-value for template
// against bits (spec §4.7).
func nonOverlapScore(bits BitSequence, template []int8) float64 {
	m := len(template)
	n := bits.Len()
	blockLen := n / nonOverlapBlocks

	data := bits.Bits()
	matches := make([]int, nonOverlapBlocks)
	for i := 0; i < nonOverlapBlocks; i++ {
		block := data[i*blockLen : (i+1)*blockLen]
		pos := 0
		count := 0
		for pos < blockLen-m {
			if templateMatchesAt(block, pos, template) {
				pos += m
				count++
			} else {
				pos++
			}
		}
		matches[i] = count
	}

	mu := float64(blockLen-m+1) / float64(uint64(1)<<uint(m))
	sigmaSq := float64(blockLen) * (1.0/float64(uint64(1)<<uint(m)) - float64(2*m-1)/float64(uint64(1)<<uint(2*m)))

	chiSquare := 0.0
	for _, w := range matches {
		diff := float64(w) - mu
		chiSquare += diff * diff / sigmaSq
	}

	if chiSquare == 0 {
		return 0
	}
	return mathext.GammaIncRegComp(float64(nonOverlapBlocks)/2, chiSquare/2)
}

func templateMatchesAt(block []int8, pos int, template []int8) bool {
	for i, t := range template {
		if block[pos+i] != t {
			return false
		}
	}
	return true
}
