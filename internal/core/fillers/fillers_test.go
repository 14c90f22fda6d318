package fillers

import (
	"strings"
	"testing"

	"interviewcoach/internal/core/lexicon"
)

func newDetector(t *testing.T) *Detector {
	t.Helper()
	lx, err := lexicon.Load()
	if err != nil {
		t.Fatalf("load lexicon: %v", err)
	}
	return New(lx.Fillers)
}

func count(occ []string, term string) int {
	n := 0
	for _, o := range occ {
		if o == term {
			n++
		}
	}
	return n
}

func TestDetect_CaseInsensitiveWholeWord(t *testing.T) {
	d := newDetector(t)

	occ, n := d.Detect("Um, I think UM so")
	if got := count(occ, "um"); got != 2 {
		t.Fatalf("um occurrences = %d, want 2 (%v)", got, occ)
	}
	if got := count(occ, "so"); got != 1 {
		t.Fatalf("so occurrences = %d, want 1 (%v)", got, occ)
	}
	if n != len(occ) || n != 3 {
		t.Fatalf("count = %d, occurrences = %v", n, occ)
	}
	if strings.Join(occ, ",") != "um,um,so" {
		t.Fatalf("order = %v, want text order", occ)
	}
}

func TestDetect_Boundaries(t *testing.T) {
	d := newDetector(t)

	cases := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "   \n\t", 0},
		{"inside longer word", "umbrella likely someone", 0},
		{"okay is not ok", "okay", 1},
		{"huh is not uh", "huh", 1},
		{"apostrophe is a boundary", "that's like, right", 2},
		{"hyphen is a boundary", "um-uh", 2},
		{"digits glue", "um2 so3", 0},
		{"phrase", "you know what, YOU   KNOW", 2},
		{"phrase needs both words", "you knowledge", 0},
		{"fullwidth", "\uff35\uff2d", 1},
		{"zero width inside", "u\u200bh", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			occ, n := d.Detect(tc.in)
			if n != tc.want {
				t.Fatalf("Detect(%q) = %v (%d), want %d", tc.in, occ, n, tc.want)
			}
		})
	}
}

func TestDetect_Idempotent(t *testing.T) {
	d := newDetector(t)
	in := "So, basically, I literally just, like, you know, did it. Okay?"

	a, na := d.Detect(in)
	b, nb := d.Detect(in)
	if na != nb || strings.Join(a, "|") != strings.Join(b, "|") {
		t.Fatalf("non deterministic: %v vs %v", a, b)
	}
	if na != 6 {
		t.Fatalf("count = %d (%v), want 6", na, a)
	}
}

func TestDetect_OverlapPrefersLongest(t *testing.T) {
	d := New([]string{"you", "you know", "know"})
	occ, n := d.Detect("you know")
	if n != 1 || occ[0] != "you know" {
		t.Fatalf("got %v, want [you know]", occ)
	}
}

func TestNew_DropsBlanksAndDuplicates(t *testing.T) {
	d := New([]string{"um", " UM ", "", "uh"})
	if got := strings.Join(d.Terms(), ","); got != "um,uh" {
		t.Fatalf("terms = %q", got)
	}

	var nilDet *Detector
	if occ, n := nilDet.Detect("um"); n != 0 || len(occ) != 0 {
		t.Fatalf("nil detector should find nothing")
	}
}

func TestDistinct(t *testing.T) {
	got := Distinct([]string{"um", "so", "um", "like"})
	if strings.Join(got, ",") != "like,so,um" {
		t.Fatalf("Distinct = %v", got)
	}
}
