package check

import (
	"fmt"

	"github.com/quay/csafval/accessor"
)

// Test61046InvalidSSVC is test 6.1.46 ("Invalid SSVC"): every ssvc_v1
// object embedded in a metric's content must parse as a well-formed
// SSVC-v1 object.
func Test61046InvalidSSVC(doc accessor.Document) *Finding {
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
			if _, err := ParseSSVCV1(raw); err != nil {
				return &Finding{
					TestID:       "6.1.46",
					Message:      fmt.Sprintf("Invalid SSVC object: %s", err),
					InstancePath: fmt.Sprintf("/vulnerabilities/%d/metrics/%d/content/ssvc_v1", vi, mi),
				}
			}
		}
	}
	return nil
}
