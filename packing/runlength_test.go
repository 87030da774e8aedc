package packing

import "testing"

func TestRunLengthPackingE2(t *testing.T) {
	// E2-style fixture: pairs (0,2) and (64,2) -> [-999,-999,-1,-1].
	// (The spec's worked arithmetic for this fixture uses 64 as the
	// second value_byte; 0x40, not 0x80, is the byte that reproduces it.)
	tmpl, err := ParseRunLengthPacking(4, nil)
	if err != nil {
		t.Fatal(err)
	}
	field, err := tmpl.Decode([]byte{0x00, 0x02, 0x40, 0x02})
	if err != nil {
		t.Fatal(err)
	}
	want := []float32{-999, -999, -1, -1}
	for i := range want {
		if field[i] != want[i] {
			t.Errorf("field[%d] = %v, want %v", i, field[i], want[i])
		}
	}
}

func TestRunLengthPackingStopsAtFieldFull(t *testing.T) {
	tmpl, err := ParseRunLengthPacking(2, nil)
	if err != nil {
		t.Fatal(err)
	}
	field, err := tmpl.Decode([]byte{10, 5}) // count 5 but field only holds 2
	if err != nil {
		t.Fatal(err)
	}
	if len(field) != 2 {
		t.Fatalf("len(field) = %d, want 2", len(field))
	}
	want := float32(10)*0.5 - 33
	if field[0] != want || field[1] != want {
		t.Errorf("field = %v, want [%v, %v]", field, want, want)
	}
}

func TestRunLengthPackingExhaustedBuffer(t *testing.T) {
	tmpl, err := ParseRunLengthPacking(5, nil)
	if err != nil {
		t.Fatal(err)
	}
	field, err := tmpl.Decode([]byte{10, 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(field) != 5 {
		t.Fatalf("len(field) = %d, want 5", len(field))
	}
	if field[1] != 0 {
		t.Errorf("field[1] = %v, want zero value (buffer exhausted)", field[1])
	}
}
