package archive

import "math/rand"
import "strings"
import "testing"

// incompressible content large enough to span many fragments
func randomContent(n int) string {
	rng := rand.New(rand.NewSource(42))
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte(rng.Intn(256)))
	}
	return b.String()
}

func TestSplitReconstructSmall(t *testing.T) {
	content := "the archive echoes both ways"
	fragments := Split(content, "entry1", DefaultOverlapRate)

	if len(fragments) != 1 {
		t.Fatalf("small content should fit one fragment, got %d", len(fragments))
	}
	got, err := Reconstruct(fragments, ContentHash(content))
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Fatal("round trip mismatch")
	}
}

func TestSplitReconstructLarge(t *testing.T) {
	content := randomContent(8192)
	fragments := Split(content, "entry2", DefaultOverlapRate)

	if len(fragments) < 4 {
		t.Fatalf("expected several fragments, got %d", len(fragments))
	}
	for _, frag := range fragments {
		if frag.Total != len(fragments) {
			t.Fatalf("fragment %d total = %d, want %d", frag.Index, frag.Total, len(fragments))
		}
		if frag.Overlap != DefaultOverlapRate {
			t.Fatalf("fragment %d overlap = %v", frag.Index, frag.Overlap)
		}
	}

	got, err := Reconstruct(fragments, ContentHash(content))
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Fatal("round trip mismatch")
	}
}

func TestReconstructShuffled(t *testing.T) {
	content := randomContent(4096)
	fragments := Split(content, "entry3", DefaultOverlapRate)

	rng := rand.New(rand.NewSource(7))
	rng.Shuffle(len(fragments), func(i, j int) {
		fragments[i], fragments[j] = fragments[j], fragments[i]
	})

	got, err := Reconstruct(fragments, ContentHash(content))
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Fatal("round trip mismatch after shuffle")
	}
}

// a 35% overlap carries every byte in two fragments, so any single
// interior loss is survivable
func TestReconstructSurvivesSingleLoss(t *testing.T) {
	content := randomContent(8192)
	fragments := Split(content, "entry4", DefaultOverlapRate)
	if len(fragments) < 5 {
		t.Skip("content too small to drop a fragment")
	}

	dropped := append([]Fragment{}, fragments[:3]...)
	dropped = append(dropped, fragments[4:]...)

	got, err := Reconstruct(dropped, ContentHash(content))
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Fatal("round trip mismatch after single fragment loss")
	}
}

func TestReconstructDetectsGap(t *testing.T) {
	content := randomContent(16384)
	fragments := Split(content, "entry5", DefaultOverlapRate)
	if len(fragments) < 6 {
		t.Skip("content too small to drop two fragments")
	}

	dropped := append([]Fragment{}, fragments[:2]...)
	dropped = append(dropped, fragments[4:]...)

	if _, err := Reconstruct(dropped, ContentHash(content)); err != ErrFragmentGap {
		t.Fatalf("expected ErrFragmentGap, got %v", err)
	}
}

func TestReconstructOverlapScanFallback(t *testing.T) {
	content := randomContent(8192)
	fragments := Split(content, "entry6", DefaultOverlapRate)

	for i := range fragments {
		fragments[i].Offset = -1
	}

	got, err := Reconstruct(fragments, ContentHash(content))
	if err != nil {
		t.Fatal(err)
	}
	if got != content {
		t.Fatal("overlap scan reconstruction mismatch")
	}
}

func TestSplitClampsOverlapRate(t *testing.T) {
	content := randomContent(4096)

	for _, rate := range []float64{-0.5, 1.0, 2.0} {
		fragments := Split(content, "entry8", rate)
		if len(fragments) == 0 {
			t.Fatalf("rate %v produced no fragments", rate)
		}
		got, err := Reconstruct(fragments, ContentHash(content))
		if err != nil {
			t.Fatalf("rate %v: %v", rate, err)
		}
		if got != content {
			t.Fatalf("rate %v: round trip mismatch", rate)
		}
	}
}

func TestReconstructVerifiesHash(t *testing.T) {
	content := randomContent(4096)
	fragments := Split(content, "entry7", DefaultOverlapRate)

	if _, err := Reconstruct(fragments, ContentHash("tampered")); err != ErrHashMismatch {
		t.Fatalf("expected ErrHashMismatch, got %v", err)
	}
	if _, err := Reconstruct(nil, ""); err != ErrNoFragments {
		t.Fatalf("expected ErrNoFragments, got %v", err)
	}
}
