// SPDX-License-Identifier: MPL-2.0

package recipe

import "testing"

func TestCompileSlot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec     string
		wantName string
		wantQ    Quantifier
	}{
		{"file", "file", Required},
		{"?tag", "tag", Optional},
		{"*rest", "rest", Variadic},
		{"+targets", "targets", RequiredVariadic},
		{"?", "", Optional},
		{"*", "", Variadic},
		{"", "", Required},
		{"with space", "with space", Required},
		{"-flag", "-flag", Required},
		{"??double", "?double", Optional},
		{"x?", "x?", Required},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			t.Parallel()

			slot := CompileSlot(tt.spec)
			if slot.Name != tt.wantName {
				t.Errorf("CompileSlot(%q).Name = %q, want %q", tt.spec, slot.Name, tt.wantName)
			}
			if slot.Quantifier != tt.wantQ {
				t.Errorf("CompileSlot(%q).Quantifier = %v, want %v", tt.spec, slot.Quantifier, tt.wantQ)
			}
		})
	}
}

func TestCompileSlot_RoundTrip(t *testing.T) {
	t.Parallel()

	specs := []string{"name", "?name", "*name", "+name", "?", "+", "a-b_c"}
	for _, spec := range specs {
		slot := CompileSlot(spec)
		if got := slot.String(); got != spec {
			t.Errorf("CompileSlot(%q).String() = %q, want %q", spec, got, spec)
		}
		if got := slot.Quantifier.Symbol(); got != spec[:len(spec)-len(slot.Name)] {
			t.Errorf("CompileSlot(%q).Quantifier.Symbol() = %q, want leading symbol of spec", spec, got)
		}
	}
}

func TestCompileSlots(t *testing.T) {
	t.Parallel()

	slots := CompileSlots([]string{"arg0", "?arg1", "*arg2", "+arg3"})
	want := []ArgumentSlot{
		{Name: "arg0", Quantifier: Required},
		{Name: "arg1", Quantifier: Optional},
		{Name: "arg2", Quantifier: Variadic},
		{Name: "arg3", Quantifier: RequiredVariadic},
	}
	if len(slots) != len(want) {
		t.Fatalf("CompileSlots() returned %d slots, want %d", len(slots), len(want))
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slots[%d] = %+v, want %+v", i, slots[i], want[i])
		}
	}
}

func TestQuantifier_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		q    Quantifier
		want string
	}{
		{Required, "required"},
		{Optional, "optional"},
		{Variadic, "variadic"},
		{RequiredVariadic, "required variadic"},
		{Quantifier(42), "Quantifier(42)"},
	}
	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("Quantifier(%d).String() = %q, want %q", int(tt.q), got, tt.want)
		}
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		specs []string
		want  string
	}{
		{"no arguments", nil, ""},
		{"single required", []string{"env"}, "<env>"},
		{"single optional", []string{"?env"}, "[env]"},
		{"mixed", []string{"env", "?tag", "*rest"}, "<env> [tag] [rest]..."},
		{"required variadic", []string{"+services"}, "<services>..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Usage(CompileSlots(tt.specs)); got != tt.want {
				t.Errorf("Usage(%v) = %q, want %q", tt.specs, got, tt.want)
			}
		})
	}
}
