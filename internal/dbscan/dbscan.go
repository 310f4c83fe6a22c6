// Package dbscan implements density-based clustering over a fixed-dimension
// point set, following spec.md §4.F: an epsilon-radius neighborhood query
// backed by internal/kdtree, a 4-state label lifecycle, and BFS cluster
// expansion via a FIFO queue.
package dbscan

import (
	"container/list"
	"fmt"

	"github.com/AnyUserName/autopalette/internal/distance"
	"github.com/AnyUserName/autopalette/internal/kdtree"
	"github.com/AnyUserName/autopalette/internal/numeric"
	"github.com/AnyUserName/autopalette/internal/vector"
)

// Params bundles the tunables DBSCAN needs: the minimum neighborhood size
// for a point to seed or grow a cluster, the neighborhood radius, and the
// distance measure used to evaluate it.
type Params[F numeric.Float] struct {
	MinPoints int
	Epsilon   F
	Distance  distance.Measure[F]
}

// Result holds the outcome of a Fit call: one centroid and member-index
// list per discovered cluster, plus the indices that never joined a
// cluster.
type Result[F numeric.Float] struct {
	Centroids  map[int]vector.Point[F]
	Membership map[int][]int
	Outliers   []int
}

// CountAt reports how many dataset points belong to clusterID.
func (r *Result[F]) CountAt(clusterID int) int {
	return len(r.Membership[clusterID])
}

// Fit clusters dataset according to params without modifying it. An
// empty dataset yields an empty, non-nil Result. Fit returns an error
// instead of panicking when params are out of domain or a point has a
// NaN coordinate, since it sits behind a worker-pool boundary where a
// panic would take down unrelated work.
func Fit[F numeric.Float](dataset []vector.Point[F], params Params[F]) (*Result[F], error) {
	if params.MinPoints < 1 {
		return nil, fmt.Errorf("dbscan: min points must be >= 1, got %d", params.MinPoints)
	}
	if params.Epsilon != params.Epsilon { // NaN is the only value unequal to itself
		return nil, fmt.Errorf("dbscan: epsilon must not be NaN")
	}
	if params.Epsilon <= 0 {
		return nil, fmt.Errorf("dbscan: epsilon must be > 0, got %v", params.Epsilon)
	}
	if params.Distance == nil {
		return nil, fmt.Errorf("dbscan: distance measure must not be nil")
	}
	for i, p := range dataset {
		for axis := 0; axis < p.Dim(); axis++ {
			if v := p.At(axis); v != v {
				return nil, fmt.Errorf("dbscan: point %d has a NaN coordinate on axis %d", i, axis)
			}
		}
	}

	if len(dataset) == 0 {
		return &Result[F]{
			Centroids:  map[int]vector.Point[F]{},
			Membership: map[int][]int{},
			Outliers:   []int{},
		}, nil
	}

	tree := kdtree.Build(dataset, params.Distance)
	labels := make([]label, len(dataset))
	clusterID := 0

	for index, point := range dataset {
		if !labels[index].isUndefined() {
			continue
		}

		neighbors := tree.SearchRadius(point, params.Epsilon)
		if len(neighbors) < params.MinPoints {
			labels[index] = label{state: outlier}
			continue
		}

		for _, n := range neighbors {
			labels[n.Index] = label{state: marked}
		}
		expandCluster(clusterID, dataset, params, tree, neighbors, labels)
		clusterID++
	}

	return collect(dataset, labels), nil
}

func expandCluster[F numeric.Float](
	clusterID int,
	dataset []vector.Point[F],
	params Params[F],
	tree *kdtree.Tree[F],
	neighbors []kdtree.Neighbor[F],
	labels []label,
) {
	queue := list.New()
	for _, n := range neighbors {
		queue.PushBack(n.Index)
	}

	for queue.Len() > 0 {
		front := queue.Front()
		queue.Remove(front)
		currentIndex := front.Value.(int)

		if labels[currentIndex].isAssigned() {
			continue
		}
		if labels[currentIndex].isOutlier() {
			labels[currentIndex] = label{state: assigned, clusterID: clusterID}
			continue
		}

		labels[currentIndex] = label{state: assigned, clusterID: clusterID}

		point := dataset[currentIndex]
		secondary := tree.SearchRadius(point, params.Epsilon)
		if len(secondary) < params.MinPoints {
			continue
		}

		for _, n := range secondary {
			switch labels[n.Index].state {
			case undefined:
				labels[n.Index] = label{state: marked}
				queue.PushBack(n.Index)
			case outlier:
				queue.PushBack(n.Index)
			}
		}
	}
}

func collect[F numeric.Float](dataset []vector.Point[F], labels []label) *Result[F] {
	centroids := map[int]vector.Point[F]{}
	membership := map[int][]int{}
	var outliers []int

	for index, l := range labels {
		switch l.state {
		case assigned:
			centroid, ok := centroids[l.clusterID]
			if !ok {
				centroid = vector.Zero[F](dataset[index].Dim())
			}
			centroid.AddAssign(dataset[index])
			centroids[l.clusterID] = centroid
			membership[l.clusterID] = append(membership[l.clusterID], index)
		case outlier:
			outliers = append(outliers, index)
		default:
			panic("dbscan: point left in an unresolved label state")
		}
	}

	for id, centroid := range centroids {
		count := len(membership[id])
		centroid.DivAssign(numeric.FromInt[F](count))
		centroids[id] = centroid
	}

	if outliers == nil {
		outliers = []int{}
	}
	return &Result[F]{Centroids: centroids, Membership: membership, Outliers: outliers}
}
