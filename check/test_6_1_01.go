package check

import (
	"fmt"
	"regexp"

	"github.com/quay/csafval/accessor"
)

var cveIDPattern = regexp.MustCompile(`^CVE-\d{4}-\d{4,}$`)

// Test61001MissingCVE is test 6.1.01 ("Missing CVE"): a vulnerability that
// declares a cve value must carry one matching the CVE ID pattern.
func Test61001MissingCVE(doc accessor.Document) *Finding {
	for vi, v := range doc.Vulnerabilities() {
		cve, present := v.CVE()
		if !present {
			continue
		}
		if !cveIDPattern.MatchString(cve) {
			return &Finding{
				TestID:       "6.1.01",
				Message:      fmt.Sprintf("Invalid CVE id: %q", cve),
				InstancePath: fmt.Sprintf("/vulnerabilities/%d/cve", vi),
			}
		}
	}
	return nil
}
