package decompose

import "testing"

func TestBoundsCoverage(t *testing.T) {
	sizes := []int{0, 1, 2, 5, 7, 10, 97, 100, 1000, 99999}
	workerCounts := []int{1, 2, 3, 4, 5, 8, 10, 16, 100, 1000}

	for _, n := range sizes {
		for _, m := range workerCounts {
			if start, _ := bounds(0, m, n); start != 0 {
				t.Fatalf("n=%d m=%d: first shard starts at %d, want 0", n, m, start)
			}
			if _, end := bounds(m-1, m, n); end != n {
				t.Fatalf("n=%d m=%d: last shard ends at %d, want %d", n, m, end, n)
			}

			total := 0
			prevEnd := 0
			for w := range m {
				start, end := bounds(w, m, n)
				if start != prevEnd {
					t.Fatalf("n=%d m=%d worker %d: shard starts at %d, previous ended at %d", n, m, w, start, prevEnd)
				}
				if end < start {
					t.Fatalf("n=%d m=%d worker %d: end %d before start %d", n, m, w, end, start)
				}
				total += end - start
				prevEnd = end
			}

			if total != n {
				t.Fatalf("n=%d m=%d: shards cover %d indices, want %d", n, m, total, n)
			}
		}
	}
}

func TestBoundsExactRounding(t *testing.T) {
	// 10 indices over 4 workers must floor to shard sizes 2,3,2,3.
	want := [][2]int{{0, 2}, {2, 5}, {5, 7}, {7, 10}}

	for w, exp := range want {
		start, end := bounds(w, 4, 10)
		if start != exp[0] || end != exp[1] {
			t.Errorf("bounds(%d, 4, 10) = [%d, %d), want [%d, %d)", w, start, end, exp[0], exp[1])
		}
	}
}

func TestBoundsMoreWorkersThanElements(t *testing.T) {
	seen := 0
	for w := range 10 {
		start, end := bounds(w, 10, 3)
		seen += end - start
	}
	if seen != 3 {
		t.Fatalf("10 workers over 3 elements cover %d indices, want 3", seen)
	}
}
