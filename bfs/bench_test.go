package bfs_test

import (
	"testing"

	"github.com/katalvlaran/automata/bfs"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	next := func(id int) ([]int, error) {
		if id+1 < N {
			return []int{id + 1}, nil
		}
		return nil, nil
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(0, next)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth 10.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const nodes = (1 << 10) - 1
	next := func(id int) ([]int, error) {
		var out []int
		for _, c := range []int{2*id + 1, 2*id + 2} {
			if c < nodes {
				out = append(out, c)
			}
		}
		return out, nil
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(0, next)
	}
}
