// Package kmedoids implements the assignment and swap-cost engine of
// Partitioning Around Medoids (PAM) clustering.
//
// K points are chosen from the data set as medoids. Every other point
// tracks its nearest and second-nearest medoid, which lets the cost of
// replacing one medoid with a candidate be computed in O(1) per point
// instead of reassigning against all K medoids.
//
// Basic usage:
//
//	cfg := kmedoids.DefaultConfig()
//	cfg.K = 3
//	cfg.Seed = 42
//	km, err := kmedoids.New(points, cfg)
//	km.ReassignAll()
//	for i := 0; i < maxSwaps; i++ {
//		c, err := km.BestSwap()
//		if err != nil || c.Delta >= 0 {
//			break
//		}
//		km.Swap(c.Old, c.New)
//		km.ReassignAll()
//	}
//	res, err := km.Results()
//
// Candidate.Cost is the per-point swap cost summed over all points, which
// charges nothing for the medoid being removed; Candidate.Delta adds that
// medoid's own term and is the real change in TotalCost.
//
// Swap never reassigns on its own. Cost evaluation always reads the state
// left by the last ReassignAll, so every accepted Swap must be followed by
// ReassignAll before the next evaluation.
//
// # Concurrency
//
// Set Config.Workers to spread ReassignAll, SwapCost and BestSwap over
// several goroutines. Each point is touched by exactly one goroutine and
// all of them read the same immutable MedoidSet, so results are identical
// to the sequential path. A KMedoids value itself must not be used from
// several goroutines at once.
package kmedoids
