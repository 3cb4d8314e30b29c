package core

import (
	"math"
	"sort"

	"github.com/leondejong/platform-game/shared/gamemath"
	"github.com/solarlune/resolv"
)

const (
	tagTile  = "tile"
	tagProbe = "probe"
)

// tileIndex is a resolv.Space broad phase over the level's tiles. resolv
// registers objects by whole cells using integer-ish bounds, so every object
// is padded by indexPadding on each side; callers always confirm candidates
// with the exact AABB test.
type tileIndex struct {
	space   *resolv.Space
	probe   *resolv.Object
	offsetX float64
	offsetY float64
}

const indexPadding = 1

func newTileIndex(tiles []*Tile, cellSize int) *tileIndex {
	if cellSize <= 0 {
		cellSize = 32
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range tiles {
		reachX, reachY := math.Abs(t.Archetype.DistanceX), math.Abs(t.Archetype.DistanceY)
		minX = math.Min(minX, t.Rect.X-reachX)
		minY = math.Min(minY, t.Rect.Y-reachY)
		maxX = math.Max(maxX, t.Rect.Right()+reachX)
		maxY = math.Max(maxY, t.Rect.Bottom()+reachY)
	}
	if len(tiles) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	margin := float64(2 * cellSize)
	idx := &tileIndex{
		offsetX: minX - margin,
		offsetY: minY - margin,
	}
	cells := func(span float64) int {
		return (int(math.Ceil(span+2*margin))/cellSize + 1) * cellSize
	}
	idx.space = resolv.NewSpace(cells(maxX-minX), cells(maxY-minY), cellSize, cellSize)

	for _, t := range tiles {
		obj := resolv.NewObject(0, 0, t.Rect.W+2*indexPadding, t.Rect.H+2*indexPadding, tagTile)
		obj.Data = t
		t.object = obj
		idx.add(t)
	}

	idx.probe = resolv.NewObject(0, 0, 1, 1, tagProbe)
	idx.space.Add(idx.probe)
	return idx
}

func (idx *tileIndex) place(t *Tile) {
	t.object.X = t.Rect.X - indexPadding - idx.offsetX
	t.object.Y = t.Rect.Y - indexPadding - idx.offsetY
}

// add registers a tile that is not in the space.
func (idx *tileIndex) add(t *Tile) {
	idx.place(t)
	idx.space.Add(t.object)
}

// move re-registers a tile after its position changed.
func (idx *tileIndex) move(t *Tile) {
	idx.place(t)
	t.object.Update()
}

// remove drops a disposed tile from the broad phase.
func (idx *tileIndex) remove(t *Tile) {
	if t.object != nil && t.object.Space != nil {
		idx.space.Remove(t.object)
	}
}

// query returns the tiles that may intersect area, in level order.
func (idx *tileIndex) query(area gamemath.AABB) []*Tile {
	idx.probe.X = area.X - indexPadding - idx.offsetX
	idx.probe.Y = area.Y - indexPadding - idx.offsetY
	idx.probe.W = area.W + 2*indexPadding
	idx.probe.H = area.H + 2*indexPadding
	idx.probe.Update()

	check := idx.probe.Check(0, 0, tagTile)
	if check == nil {
		return nil
	}

	found := make([]*Tile, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if t, ok := obj.Data.(*Tile); ok {
			found = append(found, t)
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].index < found[j].index })
	return found
}
