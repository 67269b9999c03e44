// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/ojimaru/sparsecs"
	"github.com/pkg/profile"
)

type position struct {
	X, Y float64
}

type velocity struct {
	DX, DY float64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for n := 0; n < rounds; n++ {
		w := sparsecs.NewWorld()
		for it := 0; it < iters; it++ {
			ents := make([]sparsecs.Entity, 0, numEntities)
			for k := 0; k < numEntities; k++ {
				e := w.CreateEntity()
				sparsecs.AddComponent(w, e, position{X: 1, Y: 2})
				sparsecs.AddComponent(w, e, velocity{DX: 3, DY: 4})
				ents = append(ents, e)
			}
			for _, e := range ents {
				w.RemoveEntity(e)
			}
		}
	}
}
