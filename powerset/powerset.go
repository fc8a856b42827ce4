package powerset

import (
	"fmt"
	"math/bits"
)

// Enumeration is an immutable canonical numbering of all subsets of {0..n-1}.
// It is safe for concurrent reads.
type Enumeration struct {
	n     int
	masks []uint64 // id → mask
	ids   []int32  // mask → id
}

// New enumerates the power set of {0..n-1}.
func New(n int) (*Enumeration, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	case n > MaxElements:
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxElements)
	}

	total := 1 << uint(n)
	e := &Enumeration{
		n:     n,
		masks: make([]uint64, 0, total),
		ids:   make([]int32, total),
	}
	for k := 0; k <= n; k++ {
		e.masks = appendCombinations(e.masks, n, k)
	}
	for id, m := range e.masks {
		e.ids[m] = int32(id)
	}

	return e, nil
}

// appendCombinations appends all k-element subsets of {0..n-1} to dst in
// lexicographic order of their ascending element sequence.
func appendCombinations(dst []uint64, n, k int) []uint64 {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		var m uint64
		for _, v := range idx {
			m |= 1 << uint(v)
		}
		dst = append(dst, m)

		// rightmost position that can still move forward
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return dst
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Size returns n, the size of the base set.
func (e *Enumeration) Size() int { return e.n }

// Count returns the number of subsets, 2^n.
func (e *Enumeration) Count() int { return len(e.masks) }

// ID returns the identifier of subset, which must be strictly ascending
// with every element in [0, n).
func (e *Enumeration) ID(subset []int) (int, error) {
	var m uint64
	prev := -1
	for _, v := range subset {
		if v <= prev || v >= e.n {
			return 0, fmt.Errorf("%w: %v", ErrInvalidSubset, subset)
		}
		m |= 1 << uint(v)
		prev = v
	}

	return int(e.ids[m]), nil
}

// IDOfMask returns the identifier of the subset encoded by mask.
func (e *Enumeration) IDOfMask(mask uint64) (int, error) {
	if mask >= uint64(len(e.ids)) {
		return 0, fmt.Errorf("%w: mask %#x", ErrInvalidSubset, mask)
	}

	return int(e.ids[mask]), nil
}

// Mask returns the bitmask of subset id.
func (e *Enumeration) Mask(id int) (uint64, error) {
	if id < 0 || id >= len(e.masks) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidID, id)
	}

	return e.masks[id], nil
}

// Subset returns the ascending elements of subset id.
func (e *Enumeration) Subset(id int) ([]int, error) {
	m, err := e.Mask(id)
	if err != nil {
		return nil, err
	}

	return Elements(m), nil
}

// Contains reports whether element belongs to subset id.
func (e *Enumeration) Contains(id, element int) bool {
	if id < 0 || id >= len(e.masks) || element < 0 || element >= e.n {
		return false
	}

	return e.masks[id]&(1<<uint(element)) != 0
}

// Elements decodes a bitmask into its ascending element sequence.
func Elements(mask uint64) []int {
	out := make([]int, 0, bits.OnesCount64(mask))
	for mask != 0 {
		i := bits.TrailingZeros64(mask)
		out = append(out, i)
		mask &^= 1 << uint(i)
	}

	return out
}
