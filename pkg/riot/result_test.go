package riot

import (
	"strings"
	"testing"
)

func TestResultAccessors(t *testing.T) {
	ok := Success(Summoner{ID: "abc"})
	if !ok.Ok() {
		t.Fatalf("Success result must report Ok")
	}
	if ok.Err() != nil {
		t.Fatalf("Success result must carry no error")
	}
	if ok.Value().ID != "abc" {
		t.Fatalf("unexpected value: %+v", ok.Value())
	}

	failed := Failure[Summoner](&APIError{StatusCode: 404, Message: "not found"})
	if failed.Ok() {
		t.Fatalf("Failure result must not report Ok")
	}
	if failed.Value().ID != "" {
		t.Fatalf("failed result must yield the zero value")
	}
	if failed.Err().StatusCode != 404 {
		t.Fatalf("unexpected error: %+v", failed.Err())
	}
}

func TestFailureWithNilErrorStaysFalsy(t *testing.T) {
	res := Failure[Summoner](nil)
	if res.Ok() {
		t.Fatalf("nil-error failure must still report not ok")
	}
	if res.Err() == nil {
		t.Fatalf("nil-error failure must synthesize an error")
	}
}

func TestResultRenderError(t *testing.T) {
	res := Failure[Summoner](&APIError{StatusCode: 429, Message: "rate limited"})

	out := res.Render("  ")
	if !strings.Contains(out, "status_code = 429") {
		t.Fatalf("rendered error missing status code: %q", out)
	}
	if !strings.Contains(out, "message = rate limited") {
		t.Fatalf("rendered error missing message: %q", out)
	}
}

func TestResultRenderSuccessIsDeterministic(t *testing.T) {
	res := Success(LeagueEntry{QueueType: "RANKED_SOLO_5x5", Tier: "GOLD", Rank: "II", Wins: 10, Losses: 5})

	first := res.Render(DefaultSeparator)
	second := res.Render(DefaultSeparator)
	if first != second {
		t.Fatalf("rendering the same result twice differed")
	}

	// Fields appear in declaration order.
	queueIdx := strings.Index(first, "queueType")
	tierIdx := strings.Index(first, "tier")
	winsIdx := strings.Index(first, "wins")
	if queueIdx < 0 || tierIdx < 0 || winsIdx < 0 {
		t.Fatalf("rendered output missing fields: %q", first)
	}
	if !(queueIdx < tierIdx && tierIdx < winsIdx) {
		t.Fatalf("fields rendered out of declaration order: %q", first)
	}
}

func TestAPIErrorClassifiers(t *testing.T) {
	if !(&APIError{StatusCode: 401}).KeyRejected() {
		t.Fatalf("401 must classify as key rejection")
	}
	if !(&APIError{StatusCode: 403}).KeyRejected() {
		t.Fatalf("403 must classify as key rejection")
	}
	if (&APIError{StatusCode: 404}).RateLimited() {
		t.Fatalf("404 must not classify as rate limited")
	}
	if got := (&APIError{StatusCode: 500, Message: "server error"}).Error(); !strings.Contains(got, "500") {
		t.Fatalf("Error() must include the status code: %q", got)
	}
}
