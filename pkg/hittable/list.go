package hittable

import (
	"github.com/marrach/gotracer/pkg/core"
	"github.com/marrach/gotracer/pkg/material"
)

// List is an ordered, heterogeneous collection of Hittables. Hit returns the
// smallest-t hit across all members.
type List struct {
	Items []Hittable
}

// NewList creates a list from the given items.
func NewList(items ...Hittable) *List {
	return &List{Items: items}
}

// Add appends an item to the list.
func (l *List) Add(item Hittable) {
	l.Items = append(l.Items, item)
}

// Hit tests every member and returns the closest hit within range.
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestT := tMax

	for _, item := range l.Items {
		if hit, ok := item.Hit(ray, tMin, closestT); ok {
			closest = hit
			closestT = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of every member's bounding box over
// timeRange, or false if the list is empty or any member has no box over
// that range.
func (l *List) BoundingBox(timeRange core.TimeRange) (core.AABB, bool) {
	if len(l.Items) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	first := true
	for _, item := range l.Items {
		box, ok := item.BoundingBox(timeRange)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			result = box
			first = false
		} else {
			result = core.Surround(result, box)
		}
	}
	return result, true
}
