package marquee

import "testing"

// recorder is a Target that logs every write.
type recorder struct {
	writes []float64
}

func (r *recorder) SetProperty(p Property, v float64) {
	if p == PropYPercent {
		r.writes = append(r.writes, v)
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		in   float64
		want Digits
	}{
		{0, Digits{0, 0, 0}},
		{47.2, Digits{0, 4, 7}},
		{47.5, Digits{0, 4, 8}},
		{99.4, Digits{0, 9, 9}},
		{99.6, Digits{1, 0, 0}},
		{100, Digits{1, 0, 0}},
		{150, Digits{1, 0, 0}},
		{-5, Digits{0, 0, 0}},
	}
	for _, tt := range tests {
		if got := Project(tt.in); got != tt.want {
			t.Errorf("Project(%v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestOdometerSweepWritesOnlyOnChange(t *testing.T) {
	var h, te, o recorder
	od := NewOdometer(&h, &te, &o)
	for i := 0; i <= 1000; i++ {
		od.Render(float64(i) / 10)
	}
	if len(o.writes) != 100 {
		t.Errorf("ones writes = %d, want 100", len(o.writes))
	}
	if len(te.writes) != 10 {
		t.Errorf("tens writes = %d, want 10", len(te.writes))
	}
	if len(h.writes) != 1 {
		t.Errorf("hundreds writes = %d, want 1", len(h.writes))
	}
	if h.writes[0] != -10 {
		t.Errorf("hundreds offset = %v, want -10", h.writes[0])
	}
	if got := od.Digits(); got != (Digits{1, 0, 0}) {
		t.Errorf("Digits = %+v, want 100", got)
	}
}

func TestOdometerSnapsToDigitOffsets(t *testing.T) {
	strips := [3]*Element{NewElement("h", ""), NewElement("t", ""), NewElement("o", "")}
	od := NewOdometer(strips[0], strips[1], strips[2])
	od.Render(47.2)
	assertNear(t, "tens", strips[1].Property(PropYPercent), -40)
	assertNear(t, "ones", strips[2].Property(PropYPercent), -70)
	assertNear(t, "hundreds", strips[0].Property(PropYPercent), 0)
	od.Render(47.4)
	assertNear(t, "ones unchanged", strips[2].Property(PropYPercent), -70)
}

func TestOdometerInvalidate(t *testing.T) {
	var h, te, o recorder
	od := NewOdometer(&h, &te, &o)
	od.Render(0)
	if len(o.writes) != 0 {
		t.Errorf("writes at 0 = %d, want 0 (strips start at 0)", len(o.writes))
	}
	od.Invalidate()
	od.Render(0)
	if len(h.writes) != 1 || len(te.writes) != 1 || len(o.writes) != 1 {
		t.Error("Invalidate should force a write of every column")
	}
}

func TestOdometerOnDigit(t *testing.T) {
	od := NewOdometer(nil, nil, nil)
	var ones []int
	od.OnDigit = func(col, digit int) {
		if col == ColumnOnes {
			ones = append(ones, digit)
		}
	}
	od.Render(1)
	od.Render(2.2)
	od.Render(2.4)
	if len(ones) != 2 || ones[0] != 1 || ones[1] != 2 {
		t.Errorf("ones = %v, want [1 2]", ones)
	}
}

func TestOdometerAsTweenTarget(t *testing.T) {
	var h, te, o recorder
	od := NewOdometer(&h, &te, &o)
	tw := Animate(od, PropValue, 0, 100, 1.6, Power2InOut)
	prev := 0.0
	for !tw.Done {
		tw.Update(1.0 / 60)
		if od.Value() < prev {
			t.Fatalf("value went backwards: %v < %v", od.Value(), prev)
		}
		prev = od.Value()
	}
	if od.Value() != 100 || od.Property(PropValue) != 100 {
		t.Errorf("Value = %v, want 100", od.Value())
	}
	if od.Digits() != (Digits{1, 0, 0}) {
		t.Errorf("Digits = %+v, want 100", od.Digits())
	}
}

func TestOdometerRenderAllocs(t *testing.T) {
	od := NewOdometer(NewElement("h", ""), NewElement("t", ""), NewElement("o", ""))
	v := 0.0
	allocs := testing.AllocsPerRun(100, func() {
		v += 0.7
		if v > 100 {
			v = 0
		}
		od.Render(v)
	})
	if allocs != 0 {
		t.Errorf("Render allocates %v times per call, want 0", allocs)
	}
}
