package dto

import (
	"encoding/json"
	"testing"
)

func TestCreateOrderRequest_ToInput(t *testing.T) {
	cases := []struct {
		name          string
		body          string
		wantProductID *int64
		wantQuantity  *int64
	}{
		{
			name:          "valid integers",
			body:          `{"items":[{"product_id":3,"quantity":2}]}`,
			wantProductID: ptr(3),
			wantQuantity:  ptr(2),
		},
		{
			name:          "missing fields stay nil",
			body:          `{"items":[{}]}`,
			wantProductID: nil,
			wantQuantity:  nil,
		},
		{
			// строка вместо числа не валит разбор, а становится
			// неположительным значением для валидатора
			name:          "string product id",
			body:          `{"items":[{"product_id":"abc","quantity":2}]}`,
			wantProductID: ptr(0),
			wantQuantity:  ptr(2),
		},
		{
			name:          "fractional quantity",
			body:          `{"items":[{"product_id":1,"quantity":1.5}]}`,
			wantProductID: ptr(1),
			wantQuantity:  ptr(0),
		},
		{
			name:          "negative values pass through",
			body:          `{"items":[{"product_id":-7,"quantity":-1}]}`,
			wantProductID: ptr(-7),
			wantQuantity:  ptr(-1),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req CreateOrderRequest
			if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			in := req.ToInput()
			if len(in.Items) != 1 {
				t.Fatalf("items expected 1 got %d", len(in.Items))
			}
			checkPtr(t, "product_id", in.Items[0].ProductID, tc.wantProductID)
			checkPtr(t, "quantity", in.Items[0].Quantity, tc.wantQuantity)
		})
	}
}

func ptr(v int64) *int64 { return &v }

func checkPtr(t *testing.T, field string, got, want *int64) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Errorf("%s: expected nil, got %d", field, *got)
		}
		return
	}
	if got == nil {
		t.Errorf("%s: expected %d, got nil", field, *want)
		return
	}
	if *got != *want {
		t.Errorf("%s: expected %d, got %d", field, *want, *got)
	}
}
