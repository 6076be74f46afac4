package core

import (
	"fmt"
	"sort"
)

// bvhNode is a tagged variant stored in the BVH's flat arena. Children are
// referenced by arena index, never by pointer, so the tree is acyclic by
// construction and safe for lock-free concurrent reads.
type bvhNode struct {
	left, right       int  // child arena indices (internal nodes)
	leftBox, rightBox AABB // tight union boxes of each child subtree
	primitive         int  // primitive index (leaf nodes)
	leaf              bool
}

// BVH is a bounding volume hierarchy over a fixed list of primitives. It is
// built once at scene-load time, before rendering starts, and is read-only
// for the remainder of the process. BVH itself implements Hittable so it can
// stand in for the whole scene.
type BVH struct {
	UnsampledSurface

	primitives []Hittable
	nodes      []bvhNode
	rootBox    AABB
}

// NewBVH builds a BVH over the given primitives for the [time0, time1]
// interval. Every primitive must be bounded; an unbounded one is a
// construction-time precondition violation and is rejected before any tree
// building happens.
func NewBVH(primitives []Hittable, time0, time1 float64) (*BVH, error) {
	bvh := &BVH{primitives: primitives}
	if len(primitives) == 0 {
		return bvh, nil
	}

	boxes := make([]AABB, len(primitives))
	for i, prim := range primitives {
		box, ok := prim.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("bvh: primitive %d is unbounded and cannot be indexed", i)
		}
		boxes[i] = box
	}

	indices := make([]int, len(primitives))
	for i := range indices {
		indices[i] = i
	}

	bvh.nodes = make([]bvhNode, 0, 2*len(primitives))
	bvh.buildNode(boxes, indices)
	bvh.rootBox = unionOf(boxes, indices)

	return bvh, nil
}

// buildNode appends the subtree for the given index set and returns its
// arena index. The slot for an internal node is reserved before recursing
// into the children so parent and child indices stay stable.
func (bvh *BVH) buildNode(boxes []AABB, indices []int) int {
	if len(indices) == 1 {
		nodeIndex := len(bvh.nodes)
		bvh.nodes = append(bvh.nodes, bvhNode{leaf: true, primitive: indices[0]})
		return nodeIndex
	}

	// Split along the axis of greatest extent of the set's total bounds
	total := boxes[indices[0]]
	for _, idx := range indices[1:] {
		total = total.Union(boxes[idx])
	}
	axis := total.LongestAxis()

	// Median split: sort a copy of the boxes by their minimum coordinate on
	// the chosen axis and take the middle box as the partition key
	sorted := make([]float64, len(indices))
	for i, idx := range indices {
		sorted[i] = boxes[idx].Min.Axis(axis)
	}
	sort.Float64s(sorted)
	key := sorted[len(sorted)/2]

	left := make([]int, 0, len(indices)/2+1)
	right := make([]int, 0, len(indices)/2+1)
	for _, idx := range indices {
		if boxes[idx].Min.Axis(axis) < key {
			left = append(left, idx)
		} else {
			right = append(right, idx)
		}
	}

	// When the key coincides with every element the partition degenerates;
	// fall back to a deterministic positional split to guarantee termination
	if len(left) == 0 || len(right) == 0 {
		mid := len(indices) / 2
		left = indices[:mid]
		right = indices[mid:]
	}

	nodeIndex := len(bvh.nodes)
	bvh.nodes = append(bvh.nodes, bvhNode{}) // reserved, patched below

	leftBox := unionOf(boxes, left)
	rightBox := unionOf(boxes, right)
	leftIndex := bvh.buildNode(boxes, left)
	rightIndex := bvh.buildNode(boxes, right)

	bvh.nodes[nodeIndex] = bvhNode{
		left:     leftIndex,
		right:    rightIndex,
		leftBox:  leftBox,
		rightBox: rightBox,
	}
	return nodeIndex
}

// unionOf returns the tight union box of the boxes selected by indices
func unionOf(boxes []AABB, indices []int) AABB {
	out := boxes[indices[0]]
	for _, idx := range indices[1:] {
		out = out.Union(boxes[idx])
	}
	return out
}

// Hit returns the closest in-range intersection among all primitives.
// Subtrees whose box fails the slab test are pruned; both children of an
// internal node are tested with the same input interval and the candidate
// with the smallest t wins, which preserves the global closest-hit
// invariant.
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool) {
	if len(bvh.nodes) == 0 || !bvh.rootBox.Hit(ray, tMin, tMax) {
		return nil, false
	}
	hit := bvh.hitNode(0, ray, tMin, tMax, sampler)
	return hit, hit != nil
}

func (bvh *BVH) hitNode(index int, ray Ray, tMin, tMax float64, sampler Sampler) *HitRecord {
	node := &bvh.nodes[index]
	if node.leaf {
		if hit, ok := bvh.primitives[node.primitive].Hit(ray, tMin, tMax, sampler); ok {
			return hit
		}
		return nil
	}

	var closest *HitRecord
	if node.leftBox.Hit(ray, tMin, tMax) {
		closest = bvh.hitNode(node.left, ray, tMin, tMax, sampler)
	}
	if node.rightBox.Hit(ray, tMin, tMax) {
		if hit := bvh.hitNode(node.right, ray, tMin, tMax, sampler); hit != nil {
			if closest == nil || hit.T < closest.T {
				closest = hit
			}
		}
	}
	return closest
}

// Traverse collects the indices of every primitive whose leaf survives
// pruning for the given ray and interval, for deferred intersection testing
func (bvh *BVH) Traverse(ray Ray, tMin, tMax float64) []int {
	if len(bvh.nodes) == 0 || !bvh.rootBox.Hit(ray, tMin, tMax) {
		return nil
	}
	var candidates []int
	bvh.traverseNode(0, ray, tMin, tMax, &candidates)
	return candidates
}

func (bvh *BVH) traverseNode(index int, ray Ray, tMin, tMax float64, candidates *[]int) {
	node := &bvh.nodes[index]
	if node.leaf {
		*candidates = append(*candidates, node.primitive)
		return
	}
	if node.leftBox.Hit(ray, tMin, tMax) {
		bvh.traverseNode(node.left, ray, tMin, tMax, candidates)
	}
	if node.rightBox.Hit(ray, tMin, tMax) {
		bvh.traverseNode(node.right, ray, tMin, tMax, candidates)
	}
}

// BoundingBox returns the union box of every indexed primitive
func (bvh *BVH) BoundingBox(time0, time1 float64) (AABB, bool) {
	if len(bvh.nodes) == 0 {
		return AABB{}, false
	}
	return bvh.rootBox, true
}

// BVHStats describes the shape of a built BVH
type BVHStats struct {
	Primitives int
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
}

// Stats walks the arena and reports structural statistics
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{Primitives: len(bvh.primitives), TotalNodes: len(bvh.nodes)}
	if len(bvh.nodes) > 0 {
		bvh.collectStats(0, 0, &stats)
	}
	return stats
}

func (bvh *BVH) collectStats(index, depth int, stats *BVHStats) {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	node := &bvh.nodes[index]
	if node.leaf {
		stats.LeafNodes++
		return
	}
	bvh.collectStats(node.left, depth+1, stats)
	bvh.collectStats(node.right, depth+1, stats)
}
