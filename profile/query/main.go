// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query mem.pprof

package main

import (
	"github.com/ojimaru/sparsecs"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	count := 50
	iters := 10000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for n := 0; n < rounds; n++ {
		w := sparsecs.NewWorld()
		for k := 0; k < numEntities; k++ {
			e := w.CreateEntity()
			sparsecs.AddComponent(w, e, comp1{V: 1, W: 2})
			sparsecs.AddComponent(w, e, comp2{V: 3, W: 4})
		}
		query := sparsecs.NewFilter2[comp1, comp2](w)
		for it := 0; it < iters; it++ {
			query.Reset()
			for query.Next() {
				c1, c2 := query.Get()
				c1.V += c2.V
				c1.W += c2.W
			}
		}
	}
}
