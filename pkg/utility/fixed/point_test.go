package fixed

import (
	"testing"
)

func TestFixedPoint_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want string
	}{
		{"add", One.Add(Two), "3"},
		{"sub", Five.Sub(Two), "3"},
		{"mul", Two.Mul(Five), "10"},
		{"div", Ten.Div(Two), "5"},
		{"div int", Ten.DivInt(4), "2.5"},
		{"sqrt", MustParse("2.25").Sqrt(), "1.5"},
		{"abs of negative", MustParse("-3.5").Abs(), "3.5"},
		{"neg", One.Neg(), "-1"},
		{"from float", FromFloat64(100.5), "100.5"},
		{"from int with scale", FromInt(25, 1), "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %s, want %s", tt.got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_Comparisons(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"eq equal values", MustParse("1.0").Eq(One), true},
		{"eq different values", One.Eq(Two), false},
		{"gt", Two.Gt(One), true},
		{"lt", One.Lt(Two), true},
		{"gte equal", Two.Gte(Two), true},
		{"lte greater", Five.Lte(Two), false},
		{"zero is zero", Zero.IsZero(), true},
		{"one is not zero", One.IsZero(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestFixedPoint_Float64(t *testing.T) {
	f, ok := MustParse("2.5").Float64()
	if !ok {
		t.Fatal("Float64() conversion failed")
	}
	if f != 2.5 {
		t.Errorf("Float64() = %v, want 2.5", f)
	}
}

func TestFixedPoint_MarshalText(t *testing.T) {
	b, err := MustParse("0.025").MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() unexpected error: %v", err)
	}
	if string(b) != "0.025" {
		t.Errorf("MarshalText() = %s, want 0.025", b)
	}
}
