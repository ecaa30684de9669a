// SPDX-License-Identifier: MIT

package mtxio_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/sparsebfs/mtxio"
)

func ExampleReadMatrix() {
	m, err := mtxio.ReadMatrix(strings.NewReader("3 3 2\n1 2\n2 3\n"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)
	// Output:
	// CSC 3x3 nnz=2
	//   col 0: []
	//   col 1: [0]
	//   col 2: [1]
}

func ExampleWriteLevels() {
	_ = mtxio.WriteLevels(os.Stdout, []int{0, 1, 1, -1})
	// Output:
	// 0 0
	// 1 1
	// 2 1
	// 3 -1
}
