package tui

import (
	"fmt"
	"strings"

	"github.com/surveykit/surveysha/pkg/surveysha"
)

// RenderRunSummary formats the outcome of a fingerprint run for humans.
// The first line is the verdict; every failed survey follows on its own line.
func RenderRunSummary(report surveysha.Report, mode Mode) string {
	st := stylesFor(mode)
	var b strings.Builder

	total := len(report.Results)
	context := st.muted.Render(fmt.Sprintf("(%s, %s)", report.Algorithm, report.Root))

	if report.Failed() == 0 {
		fmt.Fprintf(&b, "%s %s %s\n",
			st.success.Render(SymbolCheck),
			st.title.Render(fmt.Sprintf("%d %s fingerprinted", total, plural(total, "survey", "surveys"))),
			context)
		return b.String()
	}

	fmt.Fprintf(&b, "%s %s %s\n",
		st.err.Render(SymbolCross),
		st.title.Render(fmt.Sprintf("%d of %d %s failed", report.Failed(), total, plural(total, "survey", "surveys"))),
		context)
	for _, res := range report.Results {
		if res.Err == nil {
			continue
		}
		fmt.Fprintf(&b, "  %s %s %s\n", st.err.Render(SymbolBullet), res.Survey.Name, st.muted.Render(res.Err.Error()))
	}
	return b.String()
}

// RenderVerifySummary formats the outcome of a verification run for humans.
func RenderVerifySummary(report surveysha.VerifyReport, mode Mode) string {
	st := stylesFor(mode)
	var b strings.Builder

	total := len(report.Results)
	ok := report.Count(surveysha.VerifyOK)
	context := st.muted.Render(fmt.Sprintf("(%s, %s)", report.Algorithm, report.Root))

	if ok == total {
		fmt.Fprintf(&b, "%s %s %s\n",
			st.success.Render(SymbolCheck),
			st.title.Render(fmt.Sprintf("%d %s up to date", total, plural(total, "fingerprint", "fingerprints"))),
			context)
		return b.String()
	}

	var counts []string
	for _, status := range []surveysha.VerifyStatus{
		surveysha.VerifyStale, surveysha.VerifyMissing, surveysha.VerifyInvalid, surveysha.VerifyError,
	} {
		if n := report.Count(status); n > 0 {
			counts = append(counts, fmt.Sprintf("%d %s", n, status))
		}
	}

	fmt.Fprintf(&b, "%s %s %s\n",
		st.err.Render(SymbolCross),
		st.title.Render(fmt.Sprintf("%d of %d %s not up to date: %s",
			total-ok, total, plural(total, "fingerprint", "fingerprints"), strings.Join(counts, ", "))),
		context)

	for _, res := range report.Results {
		var detail string
		switch res.Status {
		case surveysha.VerifyOK:
			continue
		case surveysha.VerifyStale:
			detail = "changed: " + strings.Join(res.Changed, ", ")
		default:
			if res.Err != nil {
				detail = res.Err.Error()
			}
		}
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			st.warning.Render(SymbolBullet), res.Survey.Name, st.warning.Render(string(res.Status)), st.muted.Render(detail))
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
