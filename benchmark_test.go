package kmedoids

import (
	"math/rand/v2"
	"testing"
)

func generateBenchPoints(n, dims int) []*Point {
	return randomPoints(rand.New(rand.NewPCG(42, 42)), n, dims)
}

func benchSetup(b *testing.B, n, k, workers int) *KMedoids {
	b.Helper()
	cfg := DefaultConfig()
	cfg.K = k
	cfg.Seed = 42
	cfg.Workers = workers
	km, err := New(generateBenchPoints(n, 8), cfg)
	if err != nil {
		b.Fatal(err)
	}
	km.ReassignAll()
	return km
}

// --- Reassignment ---

func benchReassignAll(b *testing.B, n, workers int) {
	b.Helper()
	km := benchSetup(b, n, 10, workers)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		km.ReassignAll()
	}
}

func BenchmarkReassignAll_1000(b *testing.B)           { benchReassignAll(b, 1000, 1) }
func BenchmarkReassignAll_10000(b *testing.B)          { benchReassignAll(b, 10000, 1) }
func BenchmarkReassignAll_10000_Parallel(b *testing.B) { benchReassignAll(b, 10000, -1) }

// --- Swap cost ---

func benchSwapCost(b *testing.B, n, workers int) {
	b.Helper()
	km := benchSetup(b, n, 10, workers)
	oldID := km.MedoidIDs()[0]
	newID := nonMedoid(km)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := km.SwapCost(oldID, newID); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSwapCost_1000(b *testing.B)           { benchSwapCost(b, 1000, 1) }
func BenchmarkSwapCost_10000(b *testing.B)          { benchSwapCost(b, 10000, 1) }
func BenchmarkSwapCost_10000_Parallel(b *testing.B) { benchSwapCost(b, 10000, -1) }

// --- Best swap ---

func BenchmarkBestSwap_200(b *testing.B) {
	km := benchSetup(b, 200, 5, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := km.BestSwap(); err != nil {
			b.Fatal(err)
		}
	}
}
