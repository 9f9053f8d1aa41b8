package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByPathSegment(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Strategy
	}{
		{name: "proofs segment", path: "tests/proofs/specs/x-spec", want: StrategyProof},
		{name: "interactive segment", path: "tests/interactive/add.sem", want: StrategyInteractive},
		{name: "no convention segment", path: "tests/vm/add.sem", want: StrategyDefault},
		{name: "proofs wins over interactive", path: "tests/interactive/proofs/x-spec", want: StrategyProof},
		{name: "proofs wins regardless of order", path: "tests/proofs/interactive/x-spec", want: StrategyProof},
		{name: "substring is not a segment", path: "tests/proofsets/add.sem", want: StrategyDefault},
		{name: "interactive substring is not a segment", path: "tests/interactively/add.sem", want: StrategyDefault},
		{name: "segment as file name", path: "tests/proofs", want: StrategyProof},
		{name: "leading segment", path: "proofs/x-spec", want: StrategyProof},
		{name: "empty path", path: "", want: StrategyDefault},
		{name: "absolute path", path: "/home/ci/tests/interactive/x", want: StrategyInteractive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.path))
		})
	}
}
