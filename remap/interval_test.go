package remap

import "testing"

func TestIntervalLength(t *testing.T) {
	type args struct {
		iv Interval
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"ordinary interval", args{Interval{Start: 50, End: 60}}, 10},
		{"single value interval", args{Interval{Start: 79, End: 80}}, 1},
		{"empty interval", args{Interval{Start: 42, End: 42}}, 0},
		{"reversed interval has length zero", args{Interval{Start: 60, End: 50}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.args.iv.Length(); got != tt.want {
				t.Errorf("Length() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Start: 50, End: 60}

	if iv.Contains(49) {
		t.Error("Contains(49) should be false")
	}
	if !iv.Contains(50) {
		t.Error("Contains(50) should be true")
	}
	if !iv.Contains(59) {
		t.Error("Contains(59) should be true")
	}
	if iv.Contains(60) {
		t.Error("Contains(60) should be false, End is exclusive")
	}
}

func TestIntervalIsEmpty(t *testing.T) {
	if (Interval{Start: 50, End: 60}).IsEmpty() {
		t.Error("[50,60) is not empty")
	}
	if !(Interval{Start: 60, End: 60}).IsEmpty() {
		t.Error("[60,60) is empty")
	}
	if !(Interval{Start: 60, End: 50}).IsEmpty() {
		t.Error("a reversed interval is empty")
	}
}
