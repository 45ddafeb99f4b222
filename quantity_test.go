package stockroom

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "50", want: 50},
		{in: "0", want: 0},
		{in: "5.5", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "many", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseQuantity(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseQuantity(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got.Units() != tc.want {
			t.Errorf("ParseQuantity(%q) = %s, want %d", tc.in, got, tc.want)
		}
	}
}

func TestQuantity_arithmetic(t *testing.T) {
	q := Q(10).Add(Q(5)).Sub(Q(3))
	if got := q.Units(); got != 12 {
		t.Errorf("10+5-3 = %d, want 12", got)
	}
	if !Q(3).LessThan(Q(4)) || Q(4).LessThan(Q(3)) {
		t.Error("LessThan is wrong")
	}
	if !Q(0).IsZero() || Q(1).IsZero() {
		t.Error("IsZero is wrong")
	}
	if !Q(1).Sub(Q(2)).IsNegative() {
		t.Error("IsNegative is wrong")
	}
}
