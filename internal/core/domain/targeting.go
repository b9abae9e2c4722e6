package domain

import (
	"encoding/json"
	"fmt"
)

// ParseTargeting decodes stored targeting metadata. It is lenient per key:
// a niche that is not a string is dropped and override values are kept
// raw for the resolver to judge. Only a document that is not a JSON object
// is an error.
func ParseTargeting(raw []byte) (Targeting, error) {
	var t Targeting
	if len(raw) == 0 {
		return t, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return t, fmt.Errorf("targeting is not a JSON object: %w", err)
	}
	if v, ok := fields["niche"]; ok {
		var niche string
		if json.Unmarshal(v, &niche) == nil {
			t.Niche = niche
		}
	}
	t.CPM = fields["cpm"]
	t.CPC = fields["cpc"]
	t.CPE = fields["cpe"]
	t.MaxMultiplier = fields["maxMultiplier"]
	return t, nil
}
