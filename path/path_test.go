package path

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want []Segment
	}{
		{"", nil},
		{"a", []Segment{Seg("a")}},
		{"a.b.c", []Segment{Seg("a"), Seg("b"), Seg("c")}},
		{"a..c", []Segment{Seg("a"), Seg(""), Seg("c")}},
		{"a.", []Segment{Seg("a"), Seg("")}},
		{".a", []Segment{Seg(""), Seg("a")}},
		{"a^.b", []Segment{Seg("a.b")}},
		{"a^^b", []Segment{Seg("a^b")}},
		{"^0", []Segment{NullSegment}},
		{"a.^0.c", []Segment{Seg("a"), NullSegment, Seg("c")}},
		{"^^0", []Segment{Seg("^0")}},
		{"^x", []Segment{Seg("^x")}},
		{"^", []Segment{Seg("^")}},
		{"^^^.", []Segment{Seg("^.")}},
		{"^^^^^.", []Segment{Seg("^^.")}},
		{"^^^^.b", []Segment{Seg("^^"), Seg("b")}},
		{"identifications.0.scientificName.fullScientificName", []Segment{
			Seg("identifications"), Seg("0"), Seg("scientificName"), Seg("fullScientificName"),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Parse(tt.in).Segments()
			var want []Segment
			if tt.want != nil {
				want = tt.want
			} else {
				want = []Segment{}
			}
			if len(got) == 0 && len(want) == 0 {
				return
			}
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("Parse(%q) segments mismatch (-want +got):\n%s", tt.in, d)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"a.b.c",
		"a..c",
		"a^.b.c",
		"a^^b",
		"^0",
		"a.^0",
		"^^0",
		"^x.y",
		"identifications.0.scientificName.fullScientificName",
		"^^^^^.",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			p := Parse(in)
			q := Parse(p.String())
			if !p.Equal(q) {
				t.Errorf("Parse(Parse(%q).String()) = %q, want equal path", in, q.String())
			}
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"identifications.", "identifications^."},
		{"a.b", "a^.b"},
		{"a^b", "a^^b"},
		{"^.", "^^^."},
		{"^0", "^^0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Escape(tt.in)
			if got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
			// an escaped segment parses back to the original single segment
			p := Parse(got)
			if p.Len() != 1 {
				t.Fatalf("Parse(Escape(%q)) has %d segments, want 1", tt.in, p.Len())
			}
			if p.Seg(0) != tt.in {
				t.Errorf("Parse(Escape(%q)).Seg(0) = %q, want %q", tt.in, p.Seg(0), tt.in)
			}
		})
	}
}

func TestEscapeIdempotentUnderParse(t *testing.T) {
	// escaping, embedding and re-parsing any number of times keeps
	// reproducing the same segment value
	s := "a.^b^^.c"
	for i := 0; i < 3; i++ {
		e := Escape(s)
		p := Parse(e)
		if p.Len() != 1 || p.Seg(0) != s {
			t.Fatalf("round %d: Parse(Escape(%q)) = %v", i, s, p.Segments())
		}
		s = e
	}
}

func TestSeg(t *testing.T) {
	p := Parse("identifications.0.scientificName.fullScientificName")
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
	if got := p.Seg(0); got != "identifications" {
		t.Errorf("Seg(0) = %q, want %q", got, "identifications")
	}
	if got := p.Seg(-1); got != "fullScientificName" {
		t.Errorf("Seg(-1) = %q, want %q", got, "fullScientificName")
	}
	if got := p.Seg(-4); got != "identifications" {
		t.Errorf("Seg(-4) = %q, want %q", got, "identifications")
	}
}

func TestSegPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Seg(5) on a 3-segment path did not panic")
		}
	}()
	Parse("a.b.c").Seg(5)
}

func TestHas(t *testing.T) {
	p := Parse("a.b.c")
	for i, want := range map[int]bool{
		0: true, 2: true, 3: false,
		-1: true, -3: true, -4: false,
	} {
		if got := p.Has(i); got != want {
			t.Errorf("Has(%d): got %v, want %v", i, got, want)
		}
	}
}

func TestSubpath(t *testing.T) {
	tests := []struct {
		in      string
		from, n int
		want    string
		wantErr bool
	}{
		{"a.b.c", 1, 2, "b.c", false},
		{"a.b.c", 0, 3, "a.b.c", false},
		{"a.b.c", 0, 0, "", false},
		{"a.b.c", -2, 2, "b.c", false},
		{"a.b.c", 2, 2, "", true},
		{"a.b.c", -4, 1, "", true},
		{"a.b.c", 1, -1, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in).Subpath(tt.from, tt.n)
			if tt.wantErr {
				if !errors.Is(err, ErrRange) {
					t.Fatalf("Subpath(%d,%d) err = %v, want ErrRange", tt.from, tt.n, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Subpath(%d,%d) error: %v", tt.from, tt.n, err)
			}
			if !got.Equal(Parse(tt.want)) {
				t.Errorf("Subpath(%d,%d) = %q, want %q", tt.from, tt.n, got.String(), tt.want)
			}
		})
	}
}

func TestSubpathFrom(t *testing.T) {
	p := Parse("a.b.c")
	got, err := p.SubpathFrom(1)
	if err != nil {
		t.Fatalf("SubpathFrom(1) error: %v", err)
	}
	if !got.Equal(Parse("b.c")) {
		t.Errorf("SubpathFrom(1) = %q, want %q", got.String(), "b.c")
	}
	if _, err := p.SubpathFrom(4); !errors.Is(err, ErrRange) {
		t.Errorf("SubpathFrom(4) err = %v, want ErrRange", err)
	}
}

func TestShiftParent(t *testing.T) {
	p := Parse("a.b.c")
	if got := p.Shift(); !got.Equal(Parse("b.c")) {
		t.Errorf("Shift() = %q, want %q", got.String(), "b.c")
	}
	if got := Empty.Shift(); !got.Equal(Empty) {
		t.Errorf("Empty.Shift() = %q, want empty", got.String())
	}
	par, ok := p.Parent()
	if !ok || !par.Equal(Parse("a.b")) {
		t.Errorf("Parent() = %q, %v, want %q, true", par.String(), ok, "a.b")
	}
	if _, ok := Empty.Parent(); ok {
		t.Error("Empty.Parent() ok = true, want false")
	}
}

func TestAppendReplaceImmutable(t *testing.T) {
	p := Parse("a.b")
	q := p.Append(Seg("c"))
	if !p.Equal(Parse("a.b")) {
		t.Errorf("Append mutated receiver: %q", p.String())
	}
	if !q.Equal(Parse("a.b.c")) {
		t.Errorf("Append = %q, want %q", q.String(), "a.b.c")
	}
	r := q.Replace(1, Seg("x"))
	if !q.Equal(Parse("a.b.c")) {
		t.Errorf("Replace mutated receiver: %q", q.String())
	}
	if !r.Equal(Parse("a.x.c")) {
		t.Errorf("Replace = %q, want %q", r.String(), "a.x.c")
	}
	if got := q.Replace(-1, Seg("z")); !got.Equal(Parse("a.b.z")) {
		t.Errorf("Replace(-1) = %q, want %q", got.String(), "a.b.z")
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"identifications.0.scientificName.fullScientificName", "identifications.scientificName.fullScientificName"},
		{"a.007.b", "a.b"},
		{"0.1.2", ""},
		{"a.b", "a.b"},
		{"a.x0.b", "a.x0.b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Parse(tt.in).Canonical()
			if !got.Equal(Parse(tt.want)) {
				t.Errorf("Canonical(%q) = %q, want %q", tt.in, got.String(), tt.want)
			}
		})
	}
	// the null marker is not an index segment
	p := New(Seg("a"), NullSegment).Canonical()
	if p.Len() != 2 {
		t.Errorf("Canonical kept %d segments, want 2", p.Len())
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"a", "a", 0},
		{"a", "b", -1},
		{"b", "a", 1},
		{"a", "a.b", -1},
		{"a.b", "a", 1},
		{"", "a", -1},
		{"a.b", "a.c", -1},
	}
	for _, tt := range tests {
		if got := Parse(tt.a).Compare(Parse(tt.b)); got != tt.want {
			t.Errorf("Compare(%q,%q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	// null marker sorts before any string segment
	if got := New(NullSegment).Compare(New(Seg(""))); got != -1 {
		t.Errorf("null vs empty = %d, want -1", got)
	}
}

func TestTextMarshal(t *testing.T) {
	p := Parse("a^.b.c")
	d, err := p.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var q Path
	if err := q.UnmarshalText(d); err != nil {
		t.Fatal(err)
	}
	if !p.Equal(q) {
		t.Errorf("text round trip = %q, want %q", q.String(), p.String())
	}
}
