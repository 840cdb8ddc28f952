package kmedoids

import "golang.org/x/sync/errgroup"

// forEachChunk splits [0, n) into contiguous ranges, one per worker, and
// calls fn on each. With workers <= 1 fn runs once on the calling
// goroutine over the whole range. Ranges never overlap, so fn may write to
// per-index slots without synchronization. The first error is returned.
func forEachChunk(n, workers int, fn func(start, end int) error) error {
	if workers <= 1 || n <= 1 {
		return fn(0, n)
	}

	var g errgroup.Group
	g.SetLimit(workers)

	rowsPerWorker := (n + workers - 1) / workers
	for start := 0; start < n; start += rowsPerWorker {
		end := min(start+rowsPerWorker, n)
		g.Go(func() error {
			return fn(start, end)
		})
	}
	return g.Wait()
}

// assignAll runs Assign on every point against one snapshot.
func assignAll(points []*Point, medoids MedoidSet, metric DistanceMetric, workers int) {
	// Assign cannot fail; the error is always nil.
	_ = forEachChunk(len(points), workers, func(start, end int) error {
		for _, p := range points[start:end] {
			p.Assign(medoids, metric)
		}
		return nil
	})
}

// sumSwapCosts evaluates SwapCost for every point and sums the results in
// point order. The sum is bitwise identical for any worker count.
func sumSwapCosts(points []*Point, oldMedoid, newMedoid *Point, medoids MedoidSet, metric DistanceMetric, workers int) (float64, error) {
	costs := make([]float64, len(points))
	err := forEachChunk(len(points), workers, func(start, end int) error {
		for i := start; i < end; i++ {
			c, err := points[i].SwapCost(oldMedoid, newMedoid, medoids, metric)
			if err != nil {
				return err
			}
			costs[i] = c
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	var total float64
	for _, c := range costs {
		total += c
	}
	return total, nil
}
