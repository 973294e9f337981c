package css

import "testing"

func TestExprString(t *testing.T) {
	e := Calc(Length{600, Px}).Sub(Length{240, Px}).Sub(Length{0, Px})
	want := "calc(600px - 240px - 0px)"
	if e.String() != want {
		t.Errorf("String() = %q, want %q", e.String(), want)
	}
}

func TestExprString_SingleOperand(t *testing.T) {
	e := Calc(Length{600, Px})
	if e.String() != "600px" {
		t.Errorf("bare expression should serialize as the length, got %q", e.String())
	}
}

func TestExprString_NegativeOperand(t *testing.T) {
	// Collapsed sidebar: left is -240px, subtracted as-is.
	e := Calc(Length{600, Px}).Sub(Length{240, Px}).Sub(Length{-240, Px})
	want := "calc(600px - 240px - -240px)"
	if e.String() != want {
		t.Errorf("String() = %q, want %q", e.String(), want)
	}
}

func TestExprResolve(t *testing.T) {
	ctx := Context{ViewportWidth: 1280, ViewportHeight: 800}

	e := Calc(Length{600, Px}).Sub(Length{240, Px}).Sub(Length{0, Px})
	got, err := e.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 360 {
		t.Errorf("Resolve = %v, want 360", got)
	}
}

func TestExprResolve_MixedUnits(t *testing.T) {
	// Intrinsic min-width in percent, sidebar geometry in pixels. Each
	// operand normalizes against the context before the subtraction.
	ctx := Context{ViewportWidth: 1200, ViewportHeight: 800}

	e := Calc(Length{50, Percent}).Sub(Length{240, Px}).Sub(Length{0, Px})
	got, err := e.Resolve(ctx)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != 360 {
		t.Errorf("Resolve = %v, want 360 (50%% of 1200 minus 240)", got)
	}
}

func TestExprResolve_Unresolvable(t *testing.T) {
	e := Calc(Length{2, Em}).Sub(Length{240, Px})
	if _, err := e.Resolve(Context{ViewportWidth: 1200}); err == nil {
		t.Error("expression with em and no font size should fail to resolve")
	}
}

func TestExprImmutable(t *testing.T) {
	base := Calc(Length{600, Px}).Sub(Length{240, Px})
	a := base.Sub(Length{10, Px})
	b := base.Sub(Length{20, Px})

	if a.String() == b.String() {
		t.Fatal("branched expressions should differ")
	}
	if base.String() != "calc(600px - 240px)" {
		t.Errorf("base mutated: %q", base.String())
	}
}
