package check

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// ssvcRequiredFields are the only properties an SSVC-v1 object may carry.
// selections, name, namespace, values, and version are required; timestamp
// is required too, but checked last, matching the order a human reading the
// object top-down would notice a problem.
var ssvcRequiredFields = []string{"selections", "name", "namespace", "values", "version", "timestamp"}

// SSVC is a parsed SSVC-v1 decision-point object, the shape the
// ssvc_v1 property of a metric's content must hold to.
type SSVC struct {
	Selections json.RawMessage
	Name       string
	Namespace  string
	Values     json.RawMessage
	Version    string
	Timestamp  time.Time
}

// ParseSSVCV1 decodes raw as an SSVC-v1 object. Unrecognized properties are
// checked first: if there are any, the alphabetically first one is reported.
// Otherwise it reports the first missing required field, checked in
// ssvcRequiredFields order.
func ParseSSVCV1(raw []byte) (*SSVC, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("ssvc_v1 is not a JSON object: %w", err)
	}

	known := make(map[string]bool, len(ssvcRequiredFields))
	for _, f := range ssvcRequiredFields {
		known[f] = true
	}
	var unknown []string
	for k := range obj {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		expected := append([]string(nil), ssvcRequiredFields...)
		sort.Strings(expected)
		return nil, fmt.Errorf("unknown field `%s`, expected one of %s", unknown[0], backtickJoin(expected))
	}

	for _, f := range ssvcRequiredFields {
		if _, ok := obj[f]; !ok {
			return nil, fmt.Errorf("missing field `%s`", f)
		}
	}

	ssvc := &SSVC{Selections: obj["selections"], Values: obj["values"]}
	if err := json.Unmarshal(obj["name"], &ssvc.Name); err != nil {
		return nil, fmt.Errorf("field `name`: %w", err)
	}
	if err := json.Unmarshal(obj["namespace"], &ssvc.Namespace); err != nil {
		return nil, fmt.Errorf("field `namespace`: %w", err)
	}
	if err := json.Unmarshal(obj["version"], &ssvc.Version); err != nil {
		return nil, fmt.Errorf("field `version`: %w", err)
	}
	var rawTimestamp string
	if err := json.Unmarshal(obj["timestamp"], &rawTimestamp); err != nil {
		return nil, fmt.Errorf("field `timestamp`: %w", err)
	}
	ts, err := time.Parse(time.RFC3339, rawTimestamp)
	if err != nil {
		return nil, fmt.Errorf("field `timestamp`: %w", err)
	}
	ssvc.Timestamp = ts

	return ssvc, nil
}

func backtickJoin(items []string) string {
	var out string
	for i, it := range items {
		if i > 0 {
			out += ", "
		}
		out += "`" + it + "`"
	}
	return out
}
