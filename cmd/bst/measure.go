package main

import (
	"fmt"
	"io"
	"math/rand"
	"testing"
	"text/tabwriter"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/urfave/cli/v2"
)

var measureCmd = &cli.Command{
	Name:  "measure",
	Usage: "time random insertion, lookup and sorted (worst case) insertion",
	Flags: []cli.Flag{
		&cli.IntSliceFlag{
			Name:  "sizes",
			Usage: "tree sizes for random insertion and lookup",
			Value: cli.NewIntSlice(1000, 10000, 100000),
		},
		&cli.IntSliceFlag{
			Name:  "sorted",
			Usage: "tree sizes for sorted insertion",
			Value: cli.NewIntSlice(1000, 5000, 10000),
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed of the random values",
		},
	},
	Before: func(cctx *cli.Context) error {
		testing.Init()
		return nil
	},
	Action: func(cctx *cli.Context) error {
		return printMeasurements(cctx.App.Writer, measure(cctx.IntSlice("sizes"), cctx.IntSlice("sorted"), cctx.Int64("seed")))
	},
}

// printMeasurements as a table. ms/op keeps fractions, most trees take well under 1ms.
func printMeasurements(out io.Writer, ms []measurement) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "case\tN\tms/op\tns/value\theight")
	for _, r := range ms {
		fmt.Fprintf(w, "%s\t%d\t%.3f\t%d\t%d\n", r.name, r.n, float64(r.res.NsPerOp())/1e6, r.res.NsPerOp()/int64(r.n), r.height)
	}
	return w.Flush()
}

type measurement struct {
	name   string
	n      int
	height int
	res    testing.BenchmarkResult
}

var __r1 bool

// measure runs one benchmark per case and size. Every benchmark builds its tree from
// scratch, the lookup benchmark searches for every inserted value.
func measure(random, sorted []int, seed int64) []measurement {
	rg := rand.New(rand.NewSource(seed))
	var ms []measurement
	for _, n := range random {
		if n <= 0 {
			continue
		}
		vs := make([]int, n)
		for i := range vs {
			vs[i] = rg.Int()
		}
		var tree *Trees.BST[int, uint32]
		res := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				tree = Trees.New[int](uint32(n))
				for _, v := range vs {
					tree.Insert(v)
				}
			}
		})
		ms = append(ms, measurement{"random insert", n, tree.Height(), res})
		log.Debugw("measured", "case", "random insert", "n", n, "ns/op", res.NsPerOp())
		res = testing.Benchmark(func(b *testing.B) {
			for range b.N {
				for _, v := range vs {
					__r1 = tree.Contains(v)
				}
			}
		})
		ms = append(ms, measurement{"search", n, tree.Height(), res})
	}
	for _, n := range sorted {
		if n <= 0 {
			continue
		}
		var tree *Trees.BST[int, uint32]
		res := testing.Benchmark(func(b *testing.B) {
			for range b.N {
				tree = Trees.New[int](uint32(n))
				for v := range n {
					tree.Insert(v)
				}
			}
		})
		ms = append(ms, measurement{"sorted insert", n, tree.Height(), res})
		log.Debugw("measured", "case", "sorted insert", "n", n, "ns/op", res.NsPerOp())
	}
	return ms
}
