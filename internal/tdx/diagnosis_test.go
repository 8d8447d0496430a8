package tdx

import "testing"

func TestCanonicalDiagnosis(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cable--HDMI", "cablehdmi"},
		{"cable hdmi", "cablehdmi"},
		{"CABLE  hdmi!!", "cablehdmi"},
		{"Touch Panel", "touchpanel"},
		{"  Projector ", "projector"},
		{"4:3 ratio", "ratio"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := CanonicalDiagnosis(tc.in); got != tc.want {
			t.Errorf("CanonicalDiagnosis(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNewDiagnosis(t *testing.T) {
	t.Run("no alias table keeps the raw label", func(t *testing.T) {
		d := NewDiagnosis("  Cable--HDMI ", nil)
		if d.Canonical != "cablehdmi" {
			t.Errorf("Canonical = %q, want cablehdmi", d.Canonical)
		}
		if d.Display != "Cable--HDMI" {
			t.Errorf("Display = %q, want the trimmed raw label", d.Display)
		}
	})

	t.Run("alias table sets the display name", func(t *testing.T) {
		aliases := map[string]string{"cablehdmi": "HDMI Cable"}
		d := NewDiagnosis("cable hdmi", aliases)
		if d.Display != "HDMI Cable" {
			t.Errorf("Display = %q, want HDMI Cable", d.Display)
		}
		// variants of the same label converge on the same display name
		if got := NewDiagnosis("Cable--HDMI", aliases).Display; got != "HDMI Cable" {
			t.Errorf("Display for variant = %q, want HDMI Cable", got)
		}
	})
}

func TestParseDiagnoses(t *testing.T) {
	t.Run("comma separated with noise", func(t *testing.T) {
		got := ParseDiagnoses("Cable--HDMI, , Projector ,", nil)
		if len(got) != 2 {
			t.Fatalf("parsed %d diagnoses, want 2", len(got))
		}
		if got[0].Canonical != "cablehdmi" || got[1].Canonical != "projector" {
			t.Errorf("parsed canonicals = [%q, %q]", got[0].Canonical, got[1].Canonical)
		}
	})

	t.Run("empty field yields nil", func(t *testing.T) {
		if got := ParseDiagnoses("", nil); got != nil {
			t.Errorf("ParseDiagnoses(\"\") = %v, want nil", got)
		}
	})
}
