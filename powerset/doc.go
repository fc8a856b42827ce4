// Package powerset enumerates every subset of {0, …, n-1} in a fixed canonical
// order and assigns each one a dense integer ID.
//
// Order
//
//	Subsets are ordered by increasing cardinality, then lexicographically by
//	their ascending element sequence. For n = 3:
//
//	  ID  subset
//	   0  {}
//	   1  {0}
//	   2  {1}
//	   3  {2}
//	   4  {0,1}
//	   5  {0,2}
//	   6  {1,2}
//	   7  {0,1,2}
//
//	ID 0 is always the empty set and ID 2^n-1 the full set.
//
// Representation
//
//	Subsets are stored as bitmasks (bit i set ⇔ i ∈ S), the same encoding
//	Held–Karp style dynamic programs use. The enumeration keeps both
//	directions: ID → mask and mask → ID, each O(1).
//
// Complexity
//
//   - New: O(2^n · n) time, O(2^n) memory.
//   - ID, IDOfMask, Mask: O(|S|) / O(1).
//
// The enumeration is exponential by nature; New refuses n > MaxElements.
package powerset
