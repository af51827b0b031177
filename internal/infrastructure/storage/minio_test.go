package storage

import "testing"

func TestObjectURL(t *testing.T) {
	cases := []struct {
		base, key, want string
	}{
		{"http://localhost:9000/vehicle-files", "A123/photo.jpg", "http://localhost:9000/vehicle-files/A123/photo.jpg"},
		{"https://cdn.example.com/", "A123/bill of sale.pdf", "https://cdn.example.com/A123/bill%20of%20sale.pdf"},
	}
	for _, tc := range cases {
		if got := objectURL(tc.base, tc.key); got != tc.want {
			t.Fatalf("objectURL(%q, %q) = %q, want %q", tc.base, tc.key, got, tc.want)
		}
	}
}
