package request

import (
	"encoding/json"
	"testing"
)

func TestFormNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", `150000`, 150000},
		{"decimal", `99.5`, 99.5},
		{"numeric string", `"150000"`, 150000},
		{"padded string", `" 150000 "`, 150000},
		{"empty string", `""`, 0},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n FormNumber
			if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Float64() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, n.Float64())
			}
		})
	}
}

func TestFormNumber_InsideStruct(t *testing.T) {
	var payload struct {
		ServiceFee FormNumber `json:"service_fee"`
	}
	if err := json.Unmarshal([]byte(`{"service_fee":"150000"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.ServiceFee.Float64() != 150000 {
		t.Fatalf("expected 150000, got %v", payload.ServiceFee.Float64())
	}
}
