// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/sparsebfs/bfs"
	"github.com/katalvlaran/sparsebfs/bitset"
)

// ExampleLevels runs BFS on the graph 0->1, 1->2, 0->2 plus an isolated vertex 3.
func ExampleLevels() {
	at, err := bfs.FromCoordinates(4, []int{0, 1, 0}, []int{1, 2, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.Levels(at, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for v, l := range res.Level {
		fmt.Println(v, l)
	}
	// Output:
	// 0 0
	// 1 1
	// 2 1
	// 3 -1
}

// ExampleWithOnLevel prints each frontier of a broadcast over a small mesh.
func ExampleWithOnLevel() {
	// A=0 reaches B=1 and C=2; both forward to D=3; D forwards to E=4
	at, _ := bfs.FromCoordinates(5, []int{0, 0, 1, 2, 3}, []int{1, 2, 3, 3, 4})

	_, err := bfs.Levels(at, 0, bfs.WithOnLevel(func(level int, frontier *bitset.Bitset) error {
		fmt.Printf("round %d: %v\n", level, frontier.Indices())
		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// round 0: [0]
	// round 1: [1 2]
	// round 2: [3]
	// round 3: [4]
}

// ExampleMultiSource computes distances from two sources in one pass.
func ExampleMultiSource() {
	at, _ := bfs.FromCoordinates(4, []int{0, 1, 2}, []int{1, 2, 3})

	res, err := bfs.MultiSource(at, []int{0, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Level[0])
	fmt.Println(res.Level[1])
	// Output:
	// [0 1 2 3]
	// [-1 -1 0 1]
}
