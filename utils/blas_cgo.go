//go:build cgo
// +build cgo

// Swaps the pure-Go BLAS for OpenBLAS when built with cgo. The banded
// Cholesky solves dominate run time for large node counts, so this is the
// build to use for convergence studies that push N past ~10^5.

package utils

/*
#cgo LDFLAGS: -lopenblas -lm -lpthread
#include <cblas.h>
*/
import "C"

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("Using netlib to accelerate BLAS")
}
