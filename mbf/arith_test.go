package mbf

import "testing"

func TestSingleAddExact(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{1, 1, 2},
		{0.5, 0.25, 0.75},
		{1.5, -0.5, 1},
		{-1, 1, 0},
		{0, 3.25, 3.25},
		{16384, 0.5, 16384.5},
	}
	for _, test := range tests {
		got, err := singleOf(t, test.a).Add(singleOf(t, test.b))
		if err != nil {
			t.Fatalf("%v + %v: %v", test.a, test.b, err)
		}
		if gv := got.ToValue(); gv != test.want {
			t.Fatalf("%v + %v = %v, expected %v", test.a, test.b, gv, test.want)
		}
	}
}

func TestSingleAddCommutes(t *testing.T) {
	vals := []float64{0, 1, -1, 0.1, 3.14159, -12345.678, 1e10, -1e-10}
	for _, a := range vals {
		for _, b := range vals {
			x, _ := singleOf(t, a).Add(singleOf(t, b))
			y, _ := singleOf(t, b).Add(singleOf(t, a))
			if x != y {
				t.Fatalf("%v + %v is not commutative: %08x vs %08x", a, b, uint32(x), uint32(y))
			}
		}
	}
}

func TestSingleMulDivExact(t *testing.T) {
	tests := []struct {
		op         byte
		a, b, want float64
	}{
		{'*', 3, 4, 12},
		{'*', 1.5, 2, 3},
		{'*', -2.5, 4, -10},
		{'*', 0, 123.5, 0},
		{'/', 10, 4, 2.5},
		{'/', 1, 4, 0.25},
		{'/', -9, 3, -3},
	}
	for _, test := range tests {
		var got Single
		var err error
		if test.op == '*' {
			got, err = singleOf(t, test.a).Mul(singleOf(t, test.b))
		} else {
			got, err = singleOf(t, test.a).Div(singleOf(t, test.b))
		}
		if err != nil {
			t.Fatalf("%v %c %v: %v", test.a, test.op, test.b, err)
		}
		if gv := got.ToValue(); gv != test.want {
			t.Fatalf("%v %c %v = %v, expected %v", test.a, test.op, test.b, gv, test.want)
		}
	}
}

func TestSingleDivRounding(t *testing.T) {
	one := singleOf(t, 1)
	three := singleOf(t, 3)
	q, err := one.Div(three)
	if err != nil {
		t.Fatalf("1/3: %v", err)
	}
	if m, e := q.ToDecimal(7); m != 3333333 || e != -7 {
		t.Fatalf("1/3 = %de%d, expected 3333333e-7", m, e)
	}
	q, err = singleOf(t, 2).Div(three)
	if err != nil {
		t.Fatalf("2/3: %v", err)
	}
	if m, e := q.ToDecimal(7); m != 6666667 || e != -7 {
		t.Fatalf("2/3 = %de%d, expected 6666667e-7", m, e)
	}
}

func TestSingleDivByZero(t *testing.T) {
	got, err := singleOf(t, 5).Div(0)
	if err != ErrDivByZero {
		t.Fatalf("expected ErrDivByZero, got %v", err)
	}
	if got != signedMaxSingle(false) {
		t.Fatalf("expected positive signed max, got %08x", uint32(got))
	}
	got, err = singleOf(t, -5).Div(0)
	if err != ErrDivByZero {
		t.Fatalf("expected ErrDivByZero, got %v", err)
	}
	if got != signedMaxSingle(true) {
		t.Fatalf("expected negative signed max, got %08x", uint32(got))
	}
}

func TestSingleOverflowSubstitutesSignedMax(t *testing.T) {
	max := signedMaxSingle(false)
	got, err := max.Add(max)
	if err != ErrOverflow {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if got != max {
		t.Fatalf("expected signed max substitute, got %08x", uint32(got))
	}
	got, err = max.Mul(singleOf(t, 2))
	if err != ErrOverflow {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
	if got != max {
		t.Fatalf("expected signed max substitute, got %08x", uint32(got))
	}
}

func TestSingleNegAbs(t *testing.T) {
	x := singleOf(t, -2.5)
	if got := x.Neg().ToValue(); got != 2.5 {
		t.Fatalf("Neg(-2.5) = %v", got)
	}
	if got := x.Abs().ToValue(); got != 2.5 {
		t.Fatalf("Abs(-2.5) = %v", got)
	}
	if got := x.Neg().Neg(); got != x {
		t.Fatalf("double negation changed the encoding: %08x vs %08x", uint32(got), uint32(x))
	}
}

func TestSingleTruncFloorRound(t *testing.T) {
	tests := []struct {
		in                  float64
		trunc, floor, round float64
	}{
		{1.5, 1, 1, 2},
		{2.5, 2, 2, 2},
		{0.5, 0, 0, 0},
		{1.25, 1, 1, 1},
		{-1.5, -1, -2, -2},
		{-2.5, -2, -3, -2},
		{-0.75, 0, -1, -1},
		{3, 3, 3, 3},
		{-3, -3, -3, -3},
		{0.25, 0, 0, 0},
	}
	for _, test := range tests {
		x := singleOf(t, test.in)
		if got := x.Trunc().ToValue(); got != test.trunc {
			t.Fatalf("Trunc(%v) = %v, expected %v", test.in, got, test.trunc)
		}
		if got := x.Floor().ToValue(); got != test.floor {
			t.Fatalf("Floor(%v) = %v, expected %v", test.in, got, test.floor)
		}
		if got := x.Round().ToValue(); got != test.round {
			t.Fatalf("Round(%v) = %v, expected %v", test.in, got, test.round)
		}
	}
}

func TestDoubleTruncFloorRound(t *testing.T) {
	x := doubleOf(t, -1.5)
	if got := x.Trunc().ToValue(); got != -1 {
		t.Fatalf("Trunc(-1.5) = %v", got)
	}
	if got := x.Floor().ToValue(); got != -2 {
		t.Fatalf("Floor(-1.5) = %v", got)
	}
	if got := x.Round().ToValue(); got != -2 {
		t.Fatalf("Round(-1.5) = %v", got)
	}
}

func TestSinglePowInt(t *testing.T) {
	tests := []struct {
		base float64
		exp  int
		want float64
	}{
		{2, 10, 1024},
		{2, 0, 1},
		{2, -2, 0.25},
		{-3, 3, -27},
		{10, 4, 10000},
	}
	for _, test := range tests {
		got, err := singleOf(t, test.base).PowInt(test.exp)
		if err != nil {
			t.Fatalf("%v^%d: %v", test.base, test.exp, err)
		}
		if gv := got.ToValue(); gv != test.want {
			t.Fatalf("%v^%d = %v, expected %v", test.base, test.exp, gv, test.want)
		}
	}
}

func TestSingleOrdering(t *testing.T) {
	vals := []float64{-1e10, -4, -2, -0.5, 0, 0.5, 2, 4, 1e10}
	for i, a := range vals {
		for j, b := range vals {
			sa, sb := singleOf(t, a), singleOf(t, b)
			if got := sa.Gt(sb); got != (i > j) {
				t.Fatalf("Single %v > %v = %v", a, b, got)
			}
			want := 0
			if i > j {
				want = 1
			} else if i < j {
				want = -1
			}
			if got := sa.Cmp(sb); got != want {
				t.Fatalf("Single Cmp(%v, %v) = %d, expected %d", a, b, got, want)
			}
		}
	}
}

func TestDoubleOrdering(t *testing.T) {
	vals := []float64{-1e30, -4, -2, -0.5, 0, 0.5, 2, 4, 1e30}
	for i, a := range vals {
		for j, b := range vals {
			da, db := doubleOf(t, a), doubleOf(t, b)
			if got := da.Gt(db); got != (i > j) {
				t.Fatalf("Double %v > %v = %v", a, b, got)
			}
			if got := da.Cmp(db); (got > 0) != (i > j) || (got == 0) != (i == j) {
				t.Fatalf("Double Cmp(%v, %v) = %d", a, b, got)
			}
		}
	}
}

func TestDoubleArithmetic(t *testing.T) {
	a := doubleOf(t, 1.25)
	b := doubleOf(t, 2.5)
	sum, err := a.Add(b)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := sum.ToValue(); got != 3.75 {
		t.Fatalf("1.25 + 2.5 = %v", got)
	}
	prod, err := a.Mul(b)
	if err != nil {
		t.Fatalf("mul: %v", err)
	}
	if got := prod.ToValue(); got != 3.125 {
		t.Fatalf("1.25 * 2.5 = %v", got)
	}
	quot, err := b.Div(a)
	if err != nil {
		t.Fatalf("div: %v", err)
	}
	if got := quot.ToValue(); got != 2 {
		t.Fatalf("2.5 / 1.25 = %v", got)
	}
}

func TestSqrtRoundTripWithinSinglePrecision(t *testing.T) {
	for _, v := range []float64{0, 1, 2, 9, 100, 12345.678} {
		x := singleOf(t, v)
		r, err := x.Sqrt()
		if err != nil {
			t.Fatalf("Sqrt(%v): %v", v, err)
		}
		sq, err := r.Mul(r)
		if err != nil {
			t.Fatalf("square: %v", err)
		}
		m1, e1 := sq.ToDecimal(6)
		m2, e2 := x.ToDecimal(6)
		if m1 != m2 || e1 != e2 {
			t.Fatalf("Sqrt(%v)^2 = %de%d, expected %de%d", v, m1, e1, m2, e2)
		}
	}
}
