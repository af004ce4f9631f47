package procedure

import (
	"encoding/json"
	"fmt"
	"strings"
)

// errVocabulary is the fixed vocabulary of error-indicating substrings,
// matched case-insensitively against notices, recordset content and
// output parameters. The wording of procedure messages is not under this
// system's control, so the match is deliberately loose and known to
// produce occasional false positives ("invalid" inside a non-error
// status, for instance).
var errVocabulary = []string{
	"unable",
	"error",
	"ошибк",
	"does not exist",
	"not found",
	"already exists",
	"duplicate",
	"invalid",
	"constraint",
	"violat",
}

// matchesErrText reports whether s contains any error-vocabulary entry.
func matchesErrText(s string) bool {
	lower := strings.ToLower(s)
	for _, word := range errVocabulary {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// Outcome is the classification of a completed procedure invocation.
type Outcome struct {
	Failed bool
	Reason string
}

// Classify decides whether a completed invocation is a business failure.
// The driver only raises on transport errors, so failure is inferred
// from four independent signals, each sufficient on its own:
//
//  1. non-zero return code
//  2. an informational notice matching the error vocabulary
//  3. the first result row carrying Success=false or matching the
//     vocabulary in serialized form
//  4. an output parameter whose stringified value matches the vocabulary
//
// The reason string follows a fixed precedence (notice, recordset,
// output, return code, generic fallback) so responses stay reproducible.
func Classify(result *Result) Outcome {
	var noticeReason string
	for _, n := range result.Notices {
		if matchesErrText(n.Message) {
			noticeReason = n.Message
			break
		}
	}

	recordsetFailed := false
	if len(result.Rows) > 0 {
		first := result.Rows[0]
		if flag, ok := first["Success"].(bool); ok && !flag {
			recordsetFailed = true
		} else if serialized, err := json.Marshal(first); err == nil && matchesErrText(string(serialized)) {
			recordsetFailed = true
		}
	}

	outputFailed := false
	for _, v := range result.Output {
		if matchesErrText(fmt.Sprint(v)) {
			outputFailed = true
			break
		}
	}

	nonZeroReturn := result.ReturnCode != nil && *result.ReturnCode != 0

	failed := nonZeroReturn || noticeReason != "" || recordsetFailed || outputFailed
	if !failed {
		return Outcome{}
	}

	reason := "Business error from stored procedure"
	switch {
	case noticeReason != "":
		reason = noticeReason
	case recordsetFailed:
		reason = "Stored procedure reported failure via recordset"
	case outputFailed:
		reason = "Stored procedure reported failure via output params"
	case nonZeroReturn:
		reason = fmt.Sprintf("Stored procedure returned non-zero code: %d", *result.ReturnCode)
	}

	return Outcome{Failed: true, Reason: reason}
}
