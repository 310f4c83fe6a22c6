// Package kdtree implements a static (build-once) k-d tree supporting
// top-k nearest and radius queries, following spec.md §4.E: median-split
// build on depth%dim, a bounded max-heap for kNN, and the standard
// "recurse both sides if the split plane is closer than the current
// bound" pruning rule for both query shapes.
package kdtree

import (
	"container/heap"
	"sort"

	"github.com/AnyUserName/autopalette/internal/distance"
	"github.com/AnyUserName/autopalette/internal/numeric"
	"github.com/AnyUserName/autopalette/internal/vector"
)

// Neighbor pairs a dataset index with its distance from some query point.
type Neighbor[F numeric.Float] struct {
	Index    int
	Distance F
}

type node struct {
	index       int
	axis        int
	left, right *node
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

// Tree is an immutable k-d tree over a caller-owned dataset. The tree
// must not outlive the dataset slice it was built from.
type Tree[F numeric.Float] struct {
	dataset []vector.Point[F]
	measure distance.Measure[F]
	root    *node
}

// Build constructs a k-d tree over dataset using measure for all queries.
// An empty dataset yields a tree whose queries always return nothing.
func Build[F numeric.Float](dataset []vector.Point[F], measure distance.Measure[F]) *Tree[F] {
	t := &Tree[F]{dataset: dataset, measure: measure}
	if len(dataset) == 0 {
		return t
	}
	indices := make([]int, len(dataset))
	for i := range indices {
		indices[i] = i
	}
	dim := dataset[0].Dim()
	t.root = buildNode(dataset, indices, 0, dim)
	return t
}

func buildNode[F numeric.Float](dataset []vector.Point[F], indices []int, depth, dim int) *node {
	if len(indices) == 0 {
		return nil
	}

	axis := depth % dim
	sort.SliceStable(indices, func(i, j int) bool {
		return dataset[indices[i]].At(axis) < dataset[indices[j]].At(axis)
	})

	median := len(indices) / 2
	return &node{
		index: indices[median],
		axis:  axis,
		left:  buildNode(dataset, indices[:median], depth+1, dim),
		right: buildNode(dataset, indices[median+1:], depth+1, dim),
	}
}

// element is the max-heap entry used to bound a top-k search: the heap
// keeps the k closest neighbors seen so far, with the current worst
// (largest distance) at the top so it can be evicted when a closer point
// is found.
type element[F numeric.Float] struct {
	index    int
	distance F
}

type maxHeap[F numeric.Float] []element[F]

func (h maxHeap[F]) Len() int            { return len(h) }
func (h maxHeap[F]) Less(i, j int) bool  { return h[i].distance > h[j].distance }
func (h maxHeap[F]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap[F]) Push(x any)         { *h = append(*h, x.(element[F])) }
func (h *maxHeap[F]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// SearchKNN returns up to k neighbors of query, sorted by ascending
// distance. k <= 0 or an empty tree yields an empty slice.
func (t *Tree[F]) SearchKNN(query vector.Point[F], k int) []Neighbor[F] {
	if k < 1 || t.root == nil {
		return nil
	}

	h := &maxHeap[F]{}
	t.searchKNN(t.root, query, k, h)

	out := make([]Neighbor[F], h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		e := heap.Pop(h).(element[F])
		out[i] = Neighbor[F]{Index: e.index, Distance: e.distance}
	}
	return out
}

func (t *Tree[F]) searchKNN(n *node, query vector.Point[F], k int, h *maxHeap[F]) {
	if n == nil {
		return
	}

	point := t.dataset[n.index]
	d := t.measure.Measure(point, query)
	heap.Push(h, element[F]{index: n.index, distance: d})
	if h.Len() > k {
		heap.Pop(h)
	}
	if n.isLeaf() {
		return
	}

	delta := query.At(n.axis) - point.At(n.axis)
	bound := numeric.Inf[F]()
	if h.Len() >= k && h.Len() > 0 {
		bound = (*h)[0].distance
	}

	if h.Len() < k || numeric.Abs(delta) <= bound {
		t.searchKNN(n.left, query, k, h)
		t.searchKNN(n.right, query, k, h)
	} else if delta < 0 {
		t.searchKNN(n.left, query, k, h)
	} else {
		t.searchKNN(n.right, query, k, h)
	}
}

// SearchRadius returns every dataset point within radius (inclusive) of
// query. Ordering is not contractual. A negative radius yields an empty
// result.
func (t *Tree[F]) SearchRadius(query vector.Point[F], radius F) []Neighbor[F] {
	if radius < 0 || t.root == nil {
		return nil
	}
	var out []Neighbor[F]
	t.searchRadius(t.root, query, radius, &out)
	return out
}

func (t *Tree[F]) searchRadius(n *node, query vector.Point[F], radius F, out *[]Neighbor[F]) {
	if n == nil {
		return
	}

	point := t.dataset[n.index]
	d := t.measure.Measure(point, query)
	if d <= radius {
		*out = append(*out, Neighbor[F]{Index: n.index, Distance: d})
	}

	delta := query.At(n.axis) - point.At(n.axis)
	if numeric.Abs(delta) <= radius {
		t.searchRadius(n.left, query, radius, out)
		t.searchRadius(n.right, query, radius, out)
	} else if delta < 0 {
		t.searchRadius(n.left, query, radius, out)
	} else {
		t.searchRadius(n.right, query, radius, out)
	}
}
