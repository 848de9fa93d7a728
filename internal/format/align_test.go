package format

import "testing"

func TestAlign4(t *testing.T) {
	cases := map[int]int{1: 4, 4: 4, 5: 8, 100: 100, 101: 104}
	for in, want := range cases {
		if got := Align4(in); got != want {
			t.Fatalf("Align4(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestHeapSize(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, MinHeapSize},
		{-5, MinHeapSize},
		{4095, MinHeapSize},
		{4096, 4096},
		{4097, 4100},
		{10001, 10004},
	}
	for _, tc := range cases {
		got, ok := HeapSize(tc.in)
		if !ok || got != tc.want {
			t.Fatalf("HeapSize(%d) = %d,%v want %d,true", tc.in, got, ok, tc.want)
		}
	}
	if _, ok := HeapSize(MaxHeapSize + 1); ok {
		t.Fatalf("HeapSize above MaxHeapSize should fail")
	}
}
