package pathagg_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/zyedidia/linkcut/pathagg"
)

func TestMaxAgainstNaiveFold(t *testing.T) {
	var agg pathagg.Max[float64]
	const n = 50
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = rand.Float64() * 1000
	}

	acc := agg.Seed(weights[0], 0)
	wantW, wantID := weights[0], 0
	for i := 1; i < n; i++ {
		v := agg.Seed(weights[i], i)
		agg.Combine(&acc, v)
		if weights[i] > wantW {
			wantW, wantID = weights[i], i
		}
	}
	if acc.Weight != wantW || acc.ID != wantID {
		t.Fatalf("got (%v,%v), want (%v,%v)", acc.Weight, acc.ID, wantW, wantID)
	}
}

func TestMaxTieBreakKeepsFirst(t *testing.T) {
	var agg pathagg.Max[float64]
	acc := agg.Seed(5, 1)
	agg.Combine(&acc, agg.Seed(5, 2))
	if acc.ID != 1 {
		t.Fatalf("expected tie to keep first combine side, got id %d", acc.ID)
	}
}

func TestMinAgainstNaiveFold(t *testing.T) {
	var agg pathagg.Min[float64]
	weights := []float64{9, 1, 8, 10, 2, 4}
	acc := agg.Seed(weights[0], 0)
	wantW, wantID := weights[0], 0
	for i := 1; i < len(weights); i++ {
		v := agg.Seed(weights[i], i)
		agg.Combine(&acc, v)
		if weights[i] < wantW {
			wantW, wantID = weights[i], i
		}
	}
	if acc.Weight != wantW || acc.ID != wantID {
		t.Fatalf("got (%v,%v), want (%v,%v)", acc.Weight, acc.ID, wantW, wantID)
	}
}

func TestSumMatchesScenarioC(t *testing.T) {
	// Scenario C: path sum over weights 8,1,9,2,4 = 24.
	var agg pathagg.Sum[float64]
	weights := []float64{8, 1, 9, 2, 4}
	acc := agg.Seed(weights[0], 0)
	for i := 1; i < len(weights); i++ {
		agg.Combine(&acc, agg.Seed(weights[i], i))
	}
	if acc != 24 {
		t.Fatalf("got %v, want 24", acc)
	}
}

func TestXorMatchesScenarioD(t *testing.T) {
	// Scenario D: xor of integer-cast weights 8,1,9,2,4 = 6.
	var agg pathagg.Xor[float64, int]
	weights := []float64{8, 1, 9, 2, 4}
	acc := agg.Seed(weights[0], 0)
	for i := 1; i < len(weights); i++ {
		agg.Combine(&acc, agg.Seed(weights[i], i))
	}
	if acc != 6 {
		t.Fatalf("got %v, want 6", acc)
	}
}

func TestFingerprintOrderIndependent(t *testing.T) {
	var agg pathagg.Fingerprint[float64]
	ids := []int{3, 1, 4, 1, 5}

	fold := func(order []int) pathagg.FingerprintVal {
		acc := agg.Seed(0, order[0])
		for _, id := range order[1:] {
			agg.Combine(&acc, agg.Seed(0, id))
		}
		return acc
	}

	a := fold(ids)
	reversed := make([]int, len(ids))
	for i, id := range ids {
		reversed[len(ids)-1-i] = id
	}
	b := fold(reversed)

	if a.Hash != b.Hash || a.Count != b.Count {
		t.Fatalf("fingerprint should be order-independent: %+v != %+v", a, b)
	}
}

func TestEmptySentinels(t *testing.T) {
	var maxAgg pathagg.Max[float64]
	if e := maxAgg.Empty(); !math.IsInf(float64(e.Weight), -1) || e.ID != -1 {
		t.Fatalf("max empty sentinel wrong: %+v", e)
	}

	var minAgg pathagg.Min[float64]
	if e := minAgg.Empty(); !math.IsInf(float64(e.Weight), 1) || e.ID != -1 {
		t.Fatalf("min empty sentinel wrong: %+v", e)
	}

	var sumAgg pathagg.Sum[float64]
	if e := sumAgg.Empty(); e != 0 {
		t.Fatalf("sum empty sentinel wrong: %v", e)
	}

	var xorAgg pathagg.Xor[float64, int]
	if e := xorAgg.Empty(); e != 0 {
		t.Fatalf("xor empty sentinel wrong: %v", e)
	}
}
