package area

import (
	"fmt"

	"github.com/katalvlaran/pipemaze/loop"
)

// TwiceArea returns twice the area of the polygon traced by route, using the
// trapezoid form of the shoelace formula Σ (y0+y1)·(x0-x1) with x = row and
// y = col. The result is exact and non-negative.
// Returns ErrOpenRoute if the route has fewer than four cells or is not closed.
func TwiceArea(route loop.Route) (int, error) {
	if len(route) < 4 || !route.Closed() {
		return 0, fmt.Errorf("%w: %d cells", ErrOpenRoute, len(route))
	}
	sum := 0
	for i := 0; i+1 < len(route); i++ {
		p0, p1 := route[i], route[i+1]
		sum += (p0.Col + p1.Col) * (p0.Row - p1.Row)
	}
	if sum < 0 {
		sum = -sum
	}
	return sum, nil
}

// Area returns the polygon area of route, truncated to an integer.
// Loops on the tile lattice always have even length, so nothing is lost.
func Area(route loop.Route) (int, error) {
	a2, err := TwiceArea(route)
	if err != nil {
		return 0, err
	}
	return a2 / 2, nil
}

// InteriorPick counts the tiles enclosed by route with Pick's theorem:
// interior = area - b/2 + 1, where b = route.Len() boundary tiles.
func InteriorPick(route loop.Route) (int, error) {
	a, err := Area(route)
	if err != nil {
		return 0, err
	}
	return a - route.Len()/2 + 1, nil
}
