package check

import (
	"fmt"
	"time"

	"github.com/quay/csafval/accessor"
)

// Test61049InconsistentSSVCTimestamp is test 6.1.49 ("Inconsistent SSVC
// Timestamp"): when a document's tracking status is final or interim, no
// ssvc_v1 timestamp may be later than the newest revision date.
func Test61049InconsistentSSVCTimestamp(doc accessor.Document) *Finding {
	tracking := doc.Tracking()
	status := tracking.Status()
	if status != accessor.StatusFinal && status != accessor.StatusInterim {
		return nil
	}

	revisions := tracking.RevisionHistory()
	var newest time.Time
	var haveNewest bool
	for ri, rev := range revisions {
		parsed, err := time.Parse(time.RFC3339, rev.Date())
		if err != nil {
			return &Finding{
				TestID:       "6.1.49",
				Message:      fmt.Sprintf("Invalid date format in revision history: %s", rev.Date()),
				InstancePath: fmt.Sprintf("/document/tracking/revision_history/%d/date", ri),
			}
		}
		if !haveNewest || parsed.After(newest) {
			newest = parsed
			haveNewest = true
		}
	}
	if !haveNewest {
		return &Finding{
			TestID:       "6.1.49",
			Message:      "Revision history must not be empty for status final or interim",
			InstancePath: "/document/tracking/revision_history",
		}
	}

	for vi, v := range doc.Vulnerabilities() {
		metrics, ok := v.Metrics()
		if !ok {
			continue
		}
		for mi, m := range metrics {
			raw, ok := m.Content().SSVCV1()
			if !ok {
				continue
			}
			ssvc, err := ParseSSVCV1(raw)
			if err != nil {
				return &Finding{
					TestID:       "6.1.49",
					Message:      fmt.Sprintf("Invalid SSVC object: %s", err),
					InstancePath: fmt.Sprintf("/vulnerabilities/%d/metrics/%d/content/ssvc_v1", vi, mi),
				}
			}
			if ssvc.Timestamp.After(newest) {
				return &Finding{
					TestID: "6.1.49",
					Message: fmt.Sprintf(
						"SSVC timestamp (%s) for vulnerability at index %d is later than the newest revision date (%s)",
						ssvc.Timestamp.Format(time.RFC3339), vi, newest.Format(time.RFC3339),
					),
					InstancePath: fmt.Sprintf("/vulnerabilities/%d/metrics/%d/content/ssvc_v1/timestamp", vi, mi),
				}
			}
		}
	}
	return nil
}
