package usecase

import "testing"

func TestCanCompleteQC(t *testing.T) {
	cases := []struct {
		name      string
		checklist map[string]bool
		want      bool
	}{
		{
			name:      "all required checks true",
			checklist: map[string]bool{"pieces_checked": true, "chains_checked": true, "dori_checked": true},
			want:      true,
		},
		{
			name:      "one check false",
			checklist: map[string]bool{"pieces_checked": true, "chains_checked": true, "dori_checked": false},
			want:      false,
		},
		{
			name:      "missing required key counts as false",
			checklist: map[string]bool{"pieces_checked": true, "chains_checked": true},
			want:      false,
		},
		{
			name:      "empty checklist",
			checklist: map[string]bool{},
			want:      false,
		},
		{
			name:      "nil checklist",
			checklist: nil,
			want:      false,
		},
		{
			name: "unknown keys ignored",
			checklist: map[string]bool{
				"pieces_checked": true, "chains_checked": true, "dori_checked": true,
				"polish_checked": false,
			},
			want: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanCompleteQC(tc.checklist); got != tc.want {
				t.Fatalf("CanCompleteQC(%v) = %v, want %v", tc.checklist, got, tc.want)
			}
		})
	}
}

func TestCanCompleteQC_FlipLastCheck(t *testing.T) {
	checklist := map[string]bool{"pieces_checked": true, "chains_checked": true, "dori_checked": false}
	if CanCompleteQC(checklist) {
		t.Fatalf("expected gate closed with dori_checked=false")
	}
	checklist["dori_checked"] = true
	if !CanCompleteQC(checklist) {
		t.Fatalf("expected gate open after flipping dori_checked")
	}
}
