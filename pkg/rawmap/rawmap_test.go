package rawmap

import "testing"

func TestDecodeNumericAndStringCoords(t *testing.T) {
	data := []byte(`{
		"solarSystems": {
			"30001573": {"center": [1.0, 2.5, -3.0]},
			"30013956": {"center": ["4.0", "5.5", "-6.0"]}
		},
		"jumps": [
			{"fromSystemID": 30001573, "toSystemID": 30013956, "jumpType": 0}
		]
	}`)

	m, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(m.SolarSystems) != 2 {
		t.Fatalf("len(SolarSystems) = %d, want 2", len(m.SolarSystems))
	}
	s := m.SolarSystems["30013956"]
	if s.Center[0] != 4.0 || s.Center[1] != 5.5 || s.Center[2] != -6.0 {
		t.Errorf("string-encoded coords decoded wrong: %+v", s.Center)
	}
	if len(m.Jumps) != 1 {
		t.Fatalf("len(Jumps) = %d, want 1", len(m.Jumps))
	}
}

func TestDecodeSkipsUnknownJumpType(t *testing.T) {
	data := []byte(`{
		"solarSystems": {"30001573": {"center": [0,0,0]}},
		"jumps": [
			{"fromSystemID": 30001573, "toSystemID": 30001573, "jumpType": 0},
			{"fromSystemID": 30001573, "toSystemID": 30001573, "jumpType": 99}
		]
	}`)

	m, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(m.Jumps) != 1 {
		t.Fatalf("len(Jumps) = %d, want 1 (unknown type skipped)", len(m.Jumps))
	}
}

func TestDecodeMissingSolarSystemsFails(t *testing.T) {
	data := []byte(`{"jumps": []}`)
	if _, err := Decode(data); err == nil {
		t.Fatal("Decode: expected error for missing solarSystems, got nil")
	}
}

func TestDecodeMalformedCoordFails(t *testing.T) {
	data := []byte(`{"solarSystems": {"30001573": {"center": [true, 0, 0]}}}`)
	if _, err := Decode(data); err == nil {
		t.Fatal("Decode: expected error for malformed coordinate, got nil")
	}
}
