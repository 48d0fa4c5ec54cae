package marquee

import "math"

// Digits is the decimal decomposition of a rounded counter value.
type Digits struct {
	Hundreds, Tens, Ones int
}

// Project rounds v (clamped to [0, 100]) and splits it into digits:
//
//	ones     = round(v) % 10
//	tens     = floor(round(v) / 10) % 10
//	hundreds = floor(round(v) / 100)
func Project(v float64) Digits {
	if math.IsNaN(v) || v < 0 {
		v = 0
	} else if v > 100 {
		v = 100
	}
	r := int(math.Round(v))
	return Digits{
		Hundreds: r / 100,
		Tens:     (r / 10) % 10,
		Ones:     r % 10,
	}
}

// Odometer column indexes.
const (
	ColumnHundreds = iota
	ColumnTens
	ColumnOnes
	numColumns
)

// digitStripStep is the strip offset in percent per digit: ten digits are
// stacked, each a tenth of the strip's height.
const digitStripStep = 100.0 / 10

// Odometer renders a three-digit counter as vertically scrolling strips of
// 0-9. Each column's PropYPercent is snapped to -digit*10 and written only
// when that column's digit changes; the smooth look comes from animating
// the driving value, never the strips.
//
// The odometer is a Target: a tween of PropValue drives it directly.
type Odometer struct {
	columns [numColumns]Target
	last    [numColumns]int
	value   float64

	// OnDigit, when set, is called after each column write.
	OnDigit func(column, digit int)
}

// NewOdometer creates an odometer over three strip targets. Strips are
// assumed to start showing 0. A nil column is skipped.
func NewOdometer(hundreds, tens, ones Target) *Odometer {
	return &Odometer{columns: [numColumns]Target{hundreds, tens, ones}}
}

// SetProperty renders v when p is PropValue.
func (o *Odometer) SetProperty(p Property, v float64) {
	if p == PropValue {
		o.Render(v)
	}
}

// Property returns the last rendered value for PropValue.
func (o *Odometer) Property(p Property) float64 {
	if p == PropValue {
		return o.value
	}
	return p.Default()
}

// Value returns the last rendered counter value.
func (o *Odometer) Value() float64 {
	return o.value
}

// Digits returns the digits currently shown.
func (o *Odometer) Digits() Digits {
	return Digits{Hundreds: o.last[ColumnHundreds], Tens: o.last[ColumnTens], Ones: o.last[ColumnOnes]}
}

// Render projects v and writes the columns whose digit changed.
func (o *Odometer) Render(v float64) {
	o.value = v
	d := Project(v)
	o.write(ColumnHundreds, d.Hundreds)
	o.write(ColumnTens, d.Tens)
	o.write(ColumnOnes, d.Ones)
}

// Invalidate forgets the last written digits so the next Render writes
// every column.
func (o *Odometer) Invalidate() {
	for i := range o.last {
		o.last[i] = -1
	}
}

func (o *Odometer) write(col, digit int) {
	if o.last[col] == digit {
		return
	}
	o.last[col] = digit
	if t := o.columns[col]; !isAbsent(t) {
		t.SetProperty(PropYPercent, -float64(digit)*digitStripStep)
	}
	if o.OnDigit != nil {
		o.OnDigit(col, digit)
	}
}
