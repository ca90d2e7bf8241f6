package loop

import (
	"github.com/katalvlaran/pipemaze/grid"
	"github.com/katalvlaran/pipemaze/maze"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	pos   grid.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	m     *maze.Maze
	opts  Options
	start grid.Position
	shape maze.StartShape
	index *grid.Grid
	queue []queueItem
	depth []int // row-major; -1 marks unseen
}

// Distances runs breadth-first search from the start over mutual pipe
// connections (a cell links to a neighbor only if both pipes point at each
// other) and returns the depth of every reachable cell. The start counts as
// its resolved tile. On a well-formed maze only loop cells are reachable and
// the largest depth equals Farthest.
//
// OnStep is called once per dequeued cell with its depth; MaxSteps does not
// apply because the search ends when the queue drains.
// Returns maze.ErrAmbiguousStart or ErrOptionViolation.
// Complexity: O(W×H) time and memory.
func Distances(m *maze.Maze, opts ...Option) (map[grid.Position]int, error) {
	o, err := buildOptions(m, opts)
	if err != nil {
		return nil, err
	}
	shape, err := m.ResolveStart()
	if err != nil {
		return nil, err
	}

	w := &walker{
		m:     m,
		opts:  o,
		start: m.Start(),
		shape: shape,
		index: m.Grid(),
		queue: make([]queueItem, 0, 2*(m.Width()+m.Height())),
		depth: make([]int, m.Width()*m.Height()),
	}
	for i := range w.depth {
		w.depth[i] = -1
	}
	w.enqueue(w.start, 0)
	w.loop()
	return w.result(), nil
}

// MaxDistance returns the largest value in dist, 0 for an empty map.
func MaxDistance(dist map[grid.Position]int) int {
	best := 0
	for _, d := range dist {
		if d > best {
			best = d
		}
	}
	return best
}

// tile returns the tile at p with the start replaced by its resolved shape.
func (w *walker) tile(p grid.Position) grid.Tile {
	if p == w.start {
		return w.shape.Tile
	}
	return w.m.Tile(p)
}

// enqueue records p at depth d and adds it to the queue.
func (w *walker) enqueue(p grid.Position, d int) {
	w.depth[w.index.Index(p)] = d
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnStep(item.depth, item.pos)
		w.enqueueNeighbors(item)
	}
}

// enqueueNeighbors enqueues every unseen cell linked to item by a mutual connection.
func (w *walker) enqueueNeighbors(item queueItem) {
	conns, ok := w.tile(item.pos).Connections()
	if !ok {
		return
	}
	for _, d := range conns {
		nbr := item.pos.Add(d)
		if !w.m.InBounds(nbr) || !w.tile(nbr).HasEntranceFrom(d.Flip()) {
			continue
		}
		if w.depth[w.index.Index(nbr)] < 0 {
			w.enqueue(nbr, item.depth+1)
		}
	}
}

// result converts the depth table into a map of reached cells.
func (w *walker) result() map[grid.Position]int {
	dist := make(map[grid.Position]int)
	for idx, d := range w.depth {
		if d >= 0 {
			dist[w.index.Coordinate(idx)] = d
		}
	}
	return dist
}
