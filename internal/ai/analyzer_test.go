package ai

import (
	"testing"
)

func TestCleanJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		if got := CleanJSON(tc.in); got != tc.want {
			t.Fatalf("CleanJSON(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseReport(t *testing.T) {
	raw := "```json\n{\"match_score\": 72, \"relevant_skills\": [\"Go\"], \"missing_skills\": [\"Kubernetes\"], \"summary\": \"ok\", \"recommendation\": \"maybe\"}\n```"

	r, err := ParseReport(raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.MatchScore != 72 {
		t.Fatalf("unexpected score: %v", r.MatchScore)
	}
	if len(r.RelevantSkills) != 1 || r.RelevantSkills[0] != "Go" {
		t.Fatalf("unexpected skills: %v", r.RelevantSkills)
	}
}

func TestParseReport_Invalid(t *testing.T) {
	if _, err := ParseReport("not json"); err == nil {
		t.Fatalf("expected error for non-JSON output")
	}
	if _, err := ParseReport("   "); err == nil {
		t.Fatalf("expected error for empty output")
	}
}
