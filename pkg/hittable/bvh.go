package hittable

import (
	"math"
	"sort"

	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

// leafThreshold is the item count at which the BVH builder splits: a set of
// fewer items becomes a single leaf.
const leafThreshold = 256

// BVHNode is a node in a bounding-volume hierarchy over a fixed set of
// Hittables, built once at scene-construction time and valid over a fixed
// TimeRange. Internal nodes hold exactly two children; leaves hold a List.
type BVHNode struct {
	Left, Right Hittable
	box         core.AABB
	timeRange   core.TimeRange
}

// NewBVH builds a BVH over items valid for timeRange. Splitting proceeds by
// sorting the current item set on the centroid of its member along axis,
// taking the median as the split point, and recursing on each half with the
// next axis (X -> Y -> Z -> X ...). Sets of fewer than leafThreshold items
// become a single leaf List instead of splitting further.
func NewBVH(items []Hittable, timeRange core.TimeRange) *BVHNode {
	return buildBVH(append([]Hittable(nil), items...), timeRange, 0)
}

func buildBVH(items []Hittable, timeRange core.TimeRange, axis int) *BVHNode {
	node := &BVHNode{timeRange: timeRange}

	if len(items) < leafThreshold {
		leaf := NewList(items...)
		node.Left = leaf
		node.Right = nil
		box, ok := leaf.BoundingBox(timeRange)
		if !ok {
			box = core.NewAABB(core.Vec3{}, core.Vec3{})
		}
		node.box = box
		return node
	}

	sort.Slice(items, func(i, j int) bool {
		return centroidLess(items[i], items[j], timeRange, axis)
	})

	mid := len(items) / 2
	nextAxis := core.NextAxis(axis)

	left := buildBVH(items[:mid], timeRange, nextAxis)
	right := buildBVH(items[mid:], timeRange, nextAxis)

	node.Left = left
	node.Right = right
	node.box = core.Surround(left.box, right.box)
	return node
}

// centroidLess orders two Hittables by the coordinate of their bounding-box
// center along axis. Items without a bounding box over timeRange sort last,
// giving a well-defined total order even in degenerate scenes.
func centroidLess(a, b Hittable, timeRange core.TimeRange, axis int) bool {
	aBox, aOK := a.BoundingBox(timeRange)
	bBox, bOK := b.BoundingBox(timeRange)

	if !aOK && !bOK {
		return false
	}
	if !aOK {
		return false
	}
	if !bOK {
		return true
	}

	ac := core.Axis(aBox.Center(), axis)
	bc := core.Axis(bBox.Center(), axis)
	if math.IsNaN(ac) {
		return false
	}
	if math.IsNaN(bc) {
		return true
	}
	return ac < bc
}

// Hit descends into whichever children's boxes the ray intersects. Both
// children are queried with the same, unshrunk (tMin, tMax) range; the
// nearer of the two candidate hits wins the tie when both report one. This
// deliberately forgoes the common shrink-the-range-after-the-left-hit
// optimization. A leaf (Right == nil) delegates straight to its List.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if n.Right == nil {
		return n.Left.Hit(ray, tMin, tMax)
	}

	leftHit, leftOK := n.Left.Hit(ray, tMin, tMax)
	rightHit, rightOK := n.Right.Hit(ray, tMin, tMax)

	switch {
	case leftOK && rightOK:
		if leftHit.T < rightHit.T {
			return leftHit, true
		}
		return rightHit, true
	case leftOK:
		return leftHit, true
	case rightOK:
		return rightHit, true
	default:
		return nil, false
	}
}

// BoundingBox returns the node's cached box, but only when timeRange is
// contained within the range the node was built for: a node built for one
// shutter interval cannot answer for a different one.
func (n *BVHNode) BoundingBox(timeRange core.TimeRange) (core.AABB, bool) {
	if !n.timeRange.Contains(timeRange) {
		return core.AABB{}, false
	}
	return n.box, true
}
