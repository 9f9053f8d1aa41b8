package domain

import (
	"path/filepath"
	"strings"
)

// Strategy selects which external tool runs an artifact and how its
// outcome is judged.
type Strategy string

const (
	StrategyDefault     Strategy = "default"
	StrategyProof       Strategy = "proof"
	StrategyInteractive Strategy = "interactive"
)

const (
	proofSegment       = "proofs"
	interactiveSegment = "interactive"
)

// Classify maps an artifact path to its execution strategy by path-segment
// convention. A path with a "proofs" segment is a proof obligation even when
// an "interactive" segment is also present; the proofs rule is checked first
// and that precedence is part of the contract.
func Classify(path string) Strategy {
	segments := strings.Split(filepath.ToSlash(path), "/")

	for _, segment := range segments {
		if segment == proofSegment {
			return StrategyProof
		}
	}

	for _, segment := range segments {
		if segment == interactiveSegment {
			return StrategyInteractive
		}
	}

	return StrategyDefault
}
