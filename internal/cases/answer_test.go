package cases

import (
	"errors"
	"testing"
)

func TestParseAnswer_Numeric(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"750", 750},
		{" 750 ", 750},
		{"$750", 750},
		{"1,250", 1250},
		{"$1,250.50", 1250.5},
		{"12.5%", 12.5},
		{"1.5k", 1500},
		{"2M", 2e6},
		{"-40", -40},
		{"-$1,000", -1000},
		{"0", 0},
	}
	for _, tc := range tests {
		got, err := ParseAnswer(tc.input, Numeric())
		if err != nil {
			t.Errorf("ParseAnswer(%q) error: %v", tc.input, err)
			continue
		}
		if got.Value != tc.want {
			t.Errorf("ParseAnswer(%q) = %v, want %v", tc.input, got.Value, tc.want)
		}
	}
}

func TestParseAnswer_NumericRejects(t *testing.T) {
	for _, input := range []string{"abc", "12abc", "--5", "1e5", "inf", "NaN", "$", "k", "1.2.3"} {
		if _, err := ParseAnswer(input, Numeric()); err == nil {
			t.Errorf("ParseAnswer(%q) should fail", input)
		}
	}
}

func TestParseAnswer_Empty(t *testing.T) {
	_, err := ParseAnswer("   ", Numeric())
	if !errors.Is(err, ErrEmptyAnswer) {
		t.Fatalf("err = %v, want ErrEmptyAnswer", err)
	}
}

func TestParseAnswer_MCQ(t *testing.T) {
	d := MCQ([]int{2, 4, 1, 3}, "a", "b", "c", "d")
	tests := []struct {
		input string
		want  int
	}{
		{"1", 0},
		{"4", 3},
		{"A", 0},
		{"b", 1},
		{" D ", 3},
	}
	for _, tc := range tests {
		got, err := ParseAnswer(tc.input, d)
		if err != nil {
			t.Errorf("ParseAnswer(%q) error: %v", tc.input, err)
			continue
		}
		if got.Choice != tc.want {
			t.Errorf("ParseAnswer(%q) = %d, want %d", tc.input, got.Choice, tc.want)
		}
	}
	for _, input := range []string{"0", "5", "E", "AB", "first"} {
		if _, err := ParseAnswer(input, d); err == nil {
			t.Errorf("ParseAnswer(%q) on MCQ should fail", input)
		}
	}
}
