package raw

import "testing"

func TestConf_Get(t *testing.T) {
	t.Setenv("TXDC_RAW_NAME", "  clean  ")
	t.Setenv("TXDC_RAW_BLANK", "   ")
	c := New().Prefix("TXDC_").Prefix("RAW_")

	if got := c.Get("NAME", "x"); got != "clean" {
		t.Fatalf("Get trimmed = %q", got)
	}
	if got := c.Get("BLANK", "def"); got != "def" {
		t.Fatalf("blank should use default, got %q", got)
	}
	if got := c.Get("MISSING", "def"); got != "def" {
		t.Fatalf("missing should use default, got %q", got)
	}
}

func TestConf_GetBool(t *testing.T) {
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"1", false, true},
		{"TRUE", false, true},
		{" yes ", false, true},
		{"no", true, false},
		{"maybe", true, false},
	}
	for _, c := range cases {
		t.Run(c.val, func(t *testing.T) {
			t.Setenv("LOG_CALLER", c.val)
			if got := New().Prefix("LOG_").GetBool("CALLER", c.def); got != c.want {
				t.Fatalf("GetBool(%q, %v) = %v", c.val, c.def, got)
			}
		})
	}
}

func TestConf_GetInt(t *testing.T) {
	cases := []struct {
		val  string
		want int
	}{
		{"", 3},
		{"10", 10},
		{"0", 0},
		{"-2", 3},
		{"ten", 3},
	}
	for _, c := range cases {
		t.Run(c.val, func(t *testing.T) {
			t.Setenv("LOG_SAMPLE_EVERY", c.val)
			if got := New().Prefix("LOG_").GetInt("SAMPLE_EVERY", 3); got != c.want {
				t.Fatalf("GetInt(%q) = %d, want %d", c.val, got, c.want)
			}
		})
	}
}
