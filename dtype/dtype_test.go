package dtype

import "testing"

func TestStringParseRoundTrip(t *testing.T) {
	cases := []DType{Bool, Int64, UInt64, Float64}
	for _, d := range cases {
		s := d.String()
		got, ok := Parse(s)
		if !ok {
			t.Errorf("Parse(%q) reported not-ok", s)
		}
		if got != d {
			t.Errorf("Parse(%q) = %v, want %v", s, got, d)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, ok := Parse("decimal"); ok {
		t.Error("Parse(\"decimal\") should report not-ok")
	}
}

func TestIsNumeric(t *testing.T) {
	if Bool.IsNumeric() {
		t.Error("Bool.IsNumeric() should be false")
	}
	for _, d := range []DType{Int64, UInt64, Float64} {
		if !d.IsNumeric() {
			t.Errorf("%v.IsNumeric() should be true", d)
		}
	}
}

func TestPromote(t *testing.T) {
	tests := []struct {
		a, b DType
		want DType
	}{
		{Int64, UInt64, Int64},
		{UInt64, Int64, Int64},
		{Int64, Float64, Float64},
		{Float64, UInt64, Float64},
		{UInt64, UInt64, UInt64},
		{Int64, Int64, Int64},
	}
	for _, tt := range tests {
		if got := Promote(tt.a, tt.b); got != tt.want {
			t.Errorf("Promote(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
