// Package builder generates deterministic graph fixtures on top of
// core.Builder: paths, cycles, stars, wheels, complete and complete
// bipartite graphs, grids and Erdős–Rényi random graphs.
//
// Constructors compose. Each one appends its own block of nodes, so
//
//	g, err := builder.BuildGraph(
//	    []core.BuilderOption{core.WithUndirected()},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(0, 1)},
//	    builder.Cycle(5), builder.Star(6), builder.RandomSparse(100, 0.02),
//	)
//
// yields the disjoint union C_5 ∪ S_6 ∪ G(100, 0.02) with node ids 0..4,
// 5..10 and 11..110. Component and centrality tests lean on this: the
// expected result of each block is known in closed form.
//
// Configuration:
//
//   - WithSeed / WithRand: RNG for RandomSparse and random weights.
//   - WithWeightFn and the With*Weight helpers: per-relationship weights.
//     Without one, relationships carry the graph's default weight.
//
// Option constructors panic on meaningless values. Topology constructors
// never panic: they return ErrTooFewVertices, ErrInvalidProbability or
// ErrNeedRandSource wrapped with the constructor name.
package builder
