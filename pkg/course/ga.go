package course

import (
	"context"
	"log/slog"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/HaploAW/Courseplay-FS22/pkg/geo"
)

// Genetic block sequencer. A chromosome pairs a permutation of the blocks
// with an entry corner per block; fitness rewards short transitions along
// the headland between consecutive blocks.

const (
	mutationRate      = 0.03
	tournamentSize    = 5
	populationFactor  = 40
	generationsFactor = 10
)

// exitCornerTable maps [entry corner][sameSide][sameEdge] to the corner the
// vehicle leaves the block at. sameSide is true for an even row count (exit
// on the entry side), sameEdge for an odd skip count (exit on the entry
// edge). Indexed 1..4 by corner.
var exitCornerTable = [5][2][2]Corner{
	CornerBL: {{CornerTR, CornerBR}, {CornerTL, CornerBL}},
	CornerBR: {{CornerTL, CornerBL}, {CornerTR, CornerBR}},
	CornerTL: {{CornerBR, CornerTR}, {CornerBL, CornerTL}},
	CornerTR: {{CornerBL, CornerTL}, {CornerBR, CornerTR}},
}

func boolIx(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ExitCorner returns the corner a block worked from entry corner c with n
// rows and the given skip count is left at.
func ExitCorner(c Corner, n, skip int) Corner {
	sameSide := n%2 == 0
	sameEdge := skip%2 == 1
	return exitCornerTable[c][boolIx(sameSide)][boolIx(sameEdge)]
}

// sequencer holds the per-invocation context of the genetic search.
type sequencer struct {
	blocks          []*Block
	innermost       *geo.Polygon
	circleStart     int
	circleStep      int
	nHeadlandPasses int
	skip            int
	polygons        map[HeadlandID]*geo.Polygon
	rng             *rand.Rand
	onGeneration    func(gen int, bestFitness float64)
}

type chromosome struct {
	blockOrder []int
	entries    []Corner
	fitness    float64
	directions []int // winning connector direction per gene
	entryDir   int   // direction of the first connector
}

var allCorners = [...]Corner{CornerBL, CornerBR, CornerTL, CornerTR}

// sequenceBlocks runs the genetic search and returns the blocks in traversal
// order, each annotated with its entry corner and the direction to the next
// block, plus the walk direction of the first connector.
func sequenceBlocks(s *sequencer) ([]*Block, int) {
	n := len(s.blocks)
	if n == 0 {
		return nil, s.circleStep
	}

	popSize := populationFactor * n
	generations := generationsFactor * n

	pop := make([]*chromosome, popSize)
	for i := range pop {
		pop[i] = s.randomChromosome()
		s.evaluate(pop[i])
	}
	best := fittest(pop)

	for gen := 0; gen < generations; gen++ {
		next := make([]*chromosome, 0, popSize)
		next = append(next, best.clone()) // elitism
		for len(next) < popSize {
			p1 := s.tournament(pop)
			p2 := s.tournament(pop)
			child := s.crossover(p1, p2)
			s.mutate(child)
			s.evaluate(child)
			next = append(next, child)
		}
		pop = next
		if b := fittest(pop); b.fitness > best.fitness {
			best = b
		}
		if s.onGeneration != nil {
			s.onGeneration(gen, best.fitness)
		}
		if logger().Enabled(context.Background(), slog.LevelDebug) {
			fits := make([]float64, len(pop))
			for i, c := range pop {
				fits[i] = c.fitness
			}
			logger().Debug("sequencer generation",
				"gen", gen, "best", best.fitness, "mean", stat.Mean(fits, nil))
		}
	}

	ordered := make([]*Block, n)
	for i, bi := range best.blockOrder {
		b := s.blocks[bi]
		b.EntryCorner = best.entries[i]
		b.DirectionToNext = best.directions[i]
		ordered[i] = b
	}
	return ordered, best.entryDir
}

func (s *sequencer) randomChromosome() *chromosome {
	n := len(s.blocks)
	c := &chromosome{
		blockOrder: s.rng.Perm(n),
		entries:    make([]Corner, n),
		directions: make([]int, n),
	}
	for i := range c.entries {
		c.entries[i] = allCorners[s.rng.Intn(len(allCorners))]
	}
	return c
}

func (c *chromosome) clone() *chromosome {
	d := &chromosome{
		blockOrder: append([]int(nil), c.blockOrder...),
		entries:    append([]Corner(nil), c.entries...),
		directions: append([]int(nil), c.directions...),
		fitness:    c.fitness,
		entryDir:   c.entryDir,
	}
	return d
}

func fittest(pop []*chromosome) *chromosome {
	best := pop[0]
	for _, c := range pop[1:] {
		if c.fitness > best.fitness {
			best = c
		}
	}
	return best
}

func (s *sequencer) tournament(pop []*chromosome) *chromosome {
	best := pop[s.rng.Intn(len(pop))]
	for i := 1; i < tournamentSize; i++ {
		c := pop[s.rng.Intn(len(pop))]
		if c.fitness > best.fitness {
			best = c
		}
	}
	return best
}

// crossover applies order-preserving crossover to the permutation part and
// uniform crossover to the entry corners.
func (s *sequencer) crossover(p1, p2 *chromosome) *chromosome {
	n := len(p1.blockOrder)
	child := &chromosome{
		blockOrder: make([]int, n),
		entries:    make([]Corner, n),
		directions: make([]int, n),
	}

	lo := s.rng.Intn(n)
	hi := lo + s.rng.Intn(n-lo)
	used := make([]bool, n)
	for i := lo; i <= hi; i++ {
		child.blockOrder[i] = p1.blockOrder[i]
		used[p1.blockOrder[i]] = true
	}
	j := 0
	for _, g := range p2.blockOrder {
		if used[g] {
			continue
		}
		for j >= lo && j <= hi {
			j++
		}
		child.blockOrder[j] = g
		j++
	}

	for i := 0; i < n; i++ {
		if s.rng.Intn(2) == 0 {
			child.entries[i] = p1.entries[i]
		} else {
			child.entries[i] = p2.entries[i]
		}
	}
	return child
}

func (s *sequencer) mutate(c *chromosome) {
	n := len(c.blockOrder)
	for i := 0; i < n; i++ {
		if s.rng.Float64() < mutationRate {
			j := s.rng.Intn(n)
			c.blockOrder[i], c.blockOrder[j] = c.blockOrder[j], c.blockOrder[i]
		}
	}
	for i := range c.entries {
		if s.rng.Float64() < mutationRate {
			c.entries[i] = allCorners[s.rng.Intn(len(allCorners))]
		}
	}
}

// evaluate computes total transition distance for the chromosome's traversal
// and stores fitness plus the winning walk directions.
func (s *sequencer) evaluate(c *chromosome) {
	total := 0.0
	for i, bi := range c.blockOrder {
		b := s.blocks[bi]
		entry := c.entries[i]
		if i == 0 {
			d, dir := s.firstBlockDistance(b, entry)
			total += d
			c.entryDir = dir
			continue
		}
		prev := s.blocks[c.blockOrder[i-1]]
		prevExit := ExitCorner(c.entries[i-1], len(prev.Rows), s.skip)
		d, dir := s.transitionDistance(prev.CornerIntersection(prevExit), b.CornerIntersection(entry))
		total += d
		c.directions[i-1] = dir
	}
	if len(c.blockOrder) > 0 {
		c.directions[len(c.blockOrder)-1] = s.circleStep
	}
	if math.IsInf(total, 1) {
		c.fitness = 0
		return
	}
	if total < 1e-3 {
		total = 1e-3
	}
	c.fitness = 10000 / total
}

// firstBlockDistance is the headland distance from circleStart to the first
// block's entry edge. With headland passes only the direction the headland
// was driven is usable; otherwise both are tried.
func (s *sequencer) firstBlockDistance(b *Block, entry Corner) (float64, int) {
	is := b.CornerIntersection(entry)
	if !is.Headland.IsField() {
		// Entry on an island headland: no path from the field headland.
		return math.Inf(1), s.circleStep
	}
	if s.nHeadlandPasses > 0 {
		return s.innermost.WalkDistance(s.circleStart, edgeTarget(is, s.circleStep), s.circleStep), s.circleStep
	}
	fwd := s.innermost.WalkDistance(s.circleStart, edgeTarget(is, 1), 1)
	back := s.innermost.WalkDistance(s.circleStart, edgeTarget(is, -1), -1)
	if back < fwd {
		return back, -1
	}
	return fwd, 1
}

// transitionDistance is the shorter walk along the polygon shared by the
// previous exit and the next entry. Endpoints on different polygons cannot
// be linked.
func (s *sequencer) transitionDistance(exit, entry Intersection) (float64, int) {
	if exit.Headland != entry.Headland {
		return math.Inf(1), 1
	}
	p, ok := s.polygons[exit.Headland]
	if !ok {
		return math.Inf(1), 1
	}
	fwd := p.WalkDistance(exit.EdgeTo, edgeTarget(entry, 1), 1)
	back := p.WalkDistance(exit.EdgeFrom, edgeTarget(entry, -1), -1)
	if back < fwd {
		return back, -1
	}
	return fwd, 1
}

// edgeTarget is the last vertex of a connector ending at the intersection's
// edge, kept inside the edge so the connector does not overshoot the row end.
func edgeTarget(is Intersection, step int) int {
	if step >= 0 {
		return is.EdgeFrom
	}
	return is.EdgeTo
}
