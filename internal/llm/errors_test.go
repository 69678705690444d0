package llm

import "testing"

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{401, KindAuth},
		{403, KindAuth},
		{429, KindRateLimit},
		{400, KindBadRequest},
		{404, KindBadRequest},
		{500, KindServer},
		{503, KindServer},
	}

	for _, tt := range tests {
		if got := classifyStatus(tt.status); got != tt.want {
			t.Errorf("classifyStatus(%d) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestErrorString(t *testing.T) {
	e := &Error{Kind: KindRateLimit, Provider: "groq", Status: 429, Message: "slow down"}
	want := "groq: rateLimit (status 429): slow down"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}

	e = &Error{Kind: KindNetwork, Provider: "ollama", Message: "refused"}
	want = "ollama: network: refused"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}
