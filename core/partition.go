package core

import (
	"fmt"

	"github.com/katalvlaran/partkit"
)

// Partition assigns every vertex to one of NbrP disjoint parts.
type Partition struct {
	Parts []int
	NbrP  int
}

// NewPartition validates parts against nbrN/nbrP and returns a Partition.
func NewPartition(parts []int, nbrN, nbrP int) (*Partition, error) {
	if nbrP < 1 {
		return nil, wrapErr(partkit.KindInvalidInput, "NewPartition", ErrNegativeCount)
	}
	if len(parts) != nbrN {
		return nil, wrapErr(partkit.KindInvariantViolation, "NewPartition", ErrPartitionSizeMismatch)
	}
	for i, p := range parts {
		if p < 0 || p >= nbrP {
			return nil, wrapErr(partkit.KindInvariantViolation, "NewPartition",
				fmt.Errorf("%w: parts[%d] = %d, nbr_p = %d", ErrPartitionOutOfRange, i, p, nbrP))
		}
	}
	cp := make([]int, len(parts))
	copy(cp, parts)
	return &Partition{Parts: cp, NbrP: nbrP}, nil
}

// Clone deep-copies the partition.
func (p *Partition) Clone() *Partition {
	cp := make([]int, len(p.Parts))
	copy(cp, p.Parts)
	return &Partition{Parts: cp, NbrP: p.NbrP}
}
