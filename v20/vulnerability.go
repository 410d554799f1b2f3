package v20

import (
	"encoding/json"

	"github.com/quay/csafval/accessor"
)

// vulnerability contains information about a CVE and its associated
// threats.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#323-vulnerabilities-property
type vulnerability struct {
	RemediationsData []remediation `json:"remediations"`
	MetricsData      []metric      `json:"metrics"`
	HasMetrics       bool          `json:"-"`
	CVEField         *string       `json:"cve"`
}

var _ accessor.Vulnerability = (*vulnerability)(nil)

// UnmarshalJSON records whether the metrics property was present at all,
// distinct from present-but-empty, per the accessor contract.
func (v *vulnerability) UnmarshalJSON(data []byte) error {
	type alias vulnerability
	var probe struct {
		Metrics json.RawMessage `json:"metrics"`
		*alias
	}
	probe.alias = (*alias)(v)
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	v.HasMetrics = probe.Metrics != nil
	if v.HasMetrics {
		if err := json.Unmarshal(probe.Metrics, &v.MetricsData); err != nil {
			return err
		}
	}
	return nil
}

// CVE implements [accessor.Vulnerability].
func (v *vulnerability) CVE() (string, bool) {
	if v.CVEField == nil {
		return "", false
	}
	return *v.CVEField, true
}

// Remediations implements [accessor.Vulnerability].
func (v *vulnerability) Remediations() []accessor.Remediation {
	out := make([]accessor.Remediation, len(v.RemediationsData))
	for i := range v.RemediationsData {
		out[i] = &v.RemediationsData[i]
	}
	return out
}

// Metrics implements [accessor.Vulnerability].
func (v *vulnerability) Metrics() ([]accessor.Metric, bool) {
	if !v.HasMetrics {
		return nil, false
	}
	out := make([]accessor.Metric, len(v.MetricsData))
	for i := range v.MetricsData {
		out[i] = &v.MetricsData[i]
	}
	return out, true
}

// metric is one metric entry of a vulnerability.
//
// https://docs.oasis-open.org/csaf/csaf/v2.0/os/csaf-v2.0-os.html#32311-vulnerabilities-property---metrics
type metric struct {
	ContentData content `json:"content"`
}

var _ accessor.Metric = (*metric)(nil)

// Content implements [accessor.Metric].
func (m *metric) Content() accessor.Content { return m.ContentData }

// content is the scoring content of a metric.
type content struct {
	SSVCV1Data json.RawMessage `json:"ssvc_v1"`
}

var _ accessor.Content = content{}

// SSVCV1 implements [accessor.Content].
func (c content) SSVCV1() ([]byte, bool) {
	if c.SSVCV1Data == nil {
		return nil, false
	}
	return []byte(c.SSVCV1Data), true
}
