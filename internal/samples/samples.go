// Package samples holds the worked examples from the pipe maze puzzle
// statement together with their known answers. Tests across the module and
// the CLI's -sample flag read from here.
package samples

import "sort"

// Sample is a puzzle text and the answers it is known to produce.
type Sample struct {
	Name       string
	Text       string
	Farthest   int
	Interior   int
	LoopLength int
	Area       int
}

// All is keyed by Sample.Name.
var All = map[string]Sample{
	"square": {
		Name: "square",
		Text: `.....
.S-7.
.|.|.
.L-J.
.....
`,
		Farthest:   4,
		Interior:   1,
		LoopLength: 8,
		Area:       4,
	},
	"square-noisy": {
		Name: "square-noisy",
		Text: `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`,
		Farthest:   4,
		Interior:   1,
		LoopLength: 8,
		Area:       4,
	},
	"minimal": {
		Name: "minimal",
		Text: `S--7
|..|
L--J
`,
		Farthest:   5,
		Interior:   2,
		LoopLength: 10,
		Area:       6,
	},
	"complex": {
		Name: "complex",
		Text: `..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`,
		Farthest:   8,
		Interior:   1,
		LoopLength: 16,
		Area:       8,
	},
	"complex-noisy": {
		Name: "complex-noisy",
		Text: `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`,
		Farthest:   8,
		Interior:   1,
		LoopLength: 16,
		Area:       8,
	},
	"enclosed": {
		Name: "enclosed",
		Text: `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`,
		Farthest:   23,
		Interior:   4,
		LoopLength: 46,
		Area:       26,
	},
	"squeezed": {
		Name: "squeezed",
		Text: `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`,
		Farthest:   22,
		Interior:   4,
		LoopLength: 44,
		Area:       25,
	},
	"larger": {
		Name: "larger",
		Text: `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`,
		Farthest:   70,
		Interior:   8,
		LoopLength: 140,
		Area:       77,
	},
	"junk": {
		Name: "junk",
		Text: `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`,
		Farthest:   80,
		Interior:   10,
		LoopLength: 160,
		Area:       89,
	},
}

// Names returns the sample names in sorted order.
func Names() []string {
	names := make([]string, 0, len(All))
	for n := range All {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
