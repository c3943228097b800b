package work

import "testing"

func TestRandomVectorReproducible(t *testing.T) {
	a := RandomVector(1000, 42)
	b := RandomVector(1000, 42)

	if len(a) != 1000 {
		t.Fatalf("expected length 1000, got %d", len(a))
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v with the same seed", i, a[i], b[i])
		}
	}
}

func TestRandomVectorSeedMatters(t *testing.T) {
	a := RandomVector(1000, 42)
	c := RandomVector(1000, 7)

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}

	if same {
		t.Error("different seeds produced identical vectors")
	}
}

func TestRandomVectorRange(t *testing.T) {
	for i, v := range RandomVector(10000, 1) {
		if v < 0 || v >= 100 {
			t.Fatalf("index %d: value %v outside [0, 100)", i, v)
		}
	}
}

func TestZeroVector(t *testing.T) {
	v := RandomVector(64, 3)
	ZeroVector(v)

	for i, x := range v {
		if x != 0 {
			t.Fatalf("index %d not cleared: %v", i, x)
		}
	}
}
