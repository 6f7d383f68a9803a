package engine

import "github.com/vovakirdan/snake-arena/internal/core"

// GenerateWalls builds clusterCount random-walk wall clusters of wallLength
// cells each. Cells within the safety radius (Chebyshev) of any exclusion cell
// stay free. Each attempt is checked with ValidateWalls; once
// Settings.WallMaxAttempts attempts fail, no walls are returned.
func GenerateWalls(ctx *Context, w, h, clusterCount, wallLength int, exclusion []core.Position) []core.Position {
	if clusterCount <= 0 || wallLength <= 0 || w <= 0 || h <= 0 {
		return nil
	}

	forbidden := safetyMask(w, h, exclusion, ctx.Settings.SafetyRadius())

	attempts := max(ctx.Settings.WallMaxAttempts, 1)
	for range attempts {
		walls := buildClusters(ctx, w, h, clusterCount, wallLength, forbidden)
		if ValidateWalls(walls, w, h) {
			return walls
		}
	}
	return nil
}

// safetyMask marks every cell within radius of an exclusion cell.
func safetyMask(w, h int, exclusion []core.Position, radius int) [][]bool {
	mask := make([][]bool, h)
	for y := range mask {
		mask[y] = make([]bool, w)
	}
	for _, e := range exclusion {
		for y := e.Y - radius; y <= e.Y+radius; y++ {
			for x := e.X - radius; x <= e.X+radius; x++ {
				if core.InBounds(core.Pos(x, y), w, h) {
					mask[y][x] = true
				}
			}
		}
	}
	return mask
}

// buildClusters runs one generation attempt.
func buildClusters(ctx *Context, w, h, clusterCount, wallLength int, forbidden [][]bool) []core.Position {
	rng := ctx.RNG
	branch := ctx.Settings.WallBranchProbability
	placed := make(map[core.Position]struct{})
	var walls []core.Position

	usable := func(p core.Position) bool {
		if !core.InBounds(p, w, h) || forbidden[p.Y][p.X] {
			return false
		}
		_, taken := placed[p]
		return !taken
	}
	add := func(p core.Position) {
		placed[p] = struct{}{}
		walls = append(walls, p)
	}

	for range clusterCount {
		start, ok := randomUsableCell(rng, w, h, usable)
		if !ok {
			break
		}
		add(start)
		cluster := []core.Position{start}
		tip := start
		stalls := 0

		for len(cluster) < wallLength && stalls < wallLength*4 {
			if len(cluster) > 1 && rng.Next() < branch {
				tip = cluster[rng.NextInt(len(cluster))]
			}
			next, ok := randomStep(rng, tip, usable)
			if !ok {
				// Dead end: restart the walk from another cell of this cluster
				stalls++
				tip = cluster[rng.NextInt(len(cluster))]
				continue
			}
			add(next)
			cluster = append(cluster, next)
			tip = next
		}
	}

	return walls
}

// randomUsableCell samples cells until one passes usable, with a bounded budget.
func randomUsableCell(rng core.RandomPort, w, h int, usable func(core.Position) bool) (core.Position, bool) {
	for range w * h {
		p := core.Pos(rng.NextInt(w), rng.NextInt(h))
		if usable(p) {
			return p, true
		}
	}
	return core.Position{}, false
}

// randomStep picks a random usable orthogonal neighbour of p.
func randomStep(rng core.RandomPort, p core.Position, usable func(core.Position) bool) (core.Position, bool) {
	dirs := []core.Direction{core.DirUp, core.DirRight, core.DirDown, core.DirLeft}
	core.Shuffle(rng, len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	for _, d := range dirs {
		next := core.NextPosition(p, d)
		if usable(next) {
			return next, true
		}
	}
	return core.Position{}, false
}

// ValidateWalls reports whether every non-wall cell of a w x h board is
// reachable from every other one. Boards without free cells are valid.
func ValidateWalls(walls []core.Position, w, h int) bool {
	blocked := make([][]bool, h)
	for y := range blocked {
		blocked[y] = make([]bool, w)
	}
	wallCount := 0
	for _, p := range walls {
		if core.InBounds(p, w, h) && !blocked[p.Y][p.X] {
			blocked[p.Y][p.X] = true
			wallCount++
		}
	}

	free := w*h - wallCount
	if free <= 0 {
		return true
	}

	// First free cell in row-major order
	var start core.Position
	found := false
	for y := 0; y < h && !found; y++ {
		for x := 0; x < w; x++ {
			if !blocked[y][x] {
				start = core.Pos(x, y)
				found = true
				break
			}
		}
	}

	visited := make([][]bool, h)
	for y := range visited {
		visited[y] = make([]bool, w)
	}
	queue := []core.Position{start}
	visited[start.Y][start.X] = true
	reached := 1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range core.Neighbors(cur) {
			if !core.InBounds(n, w, h) || blocked[n.Y][n.X] || visited[n.Y][n.X] {
				continue
			}
			visited[n.Y][n.X] = true
			reached++
			queue = append(queue, n)
		}
	}

	return reached == free
}
