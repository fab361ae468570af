package transform

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vismigrate/vismigrate/internal/domain"
	"github.com/vismigrate/vismigrate/internal/domain/literal"
)

// PercyConfig converts a Percy configuration document (.percy.yml, .percy.json
// or a JS-authored percy config) into the target document. It never fails:
// an unparsable source yields the default target document plus one warning.
func PercyConfig(documentText string) domain.ConfigResult {
	src, err := parseConfigDocument(documentText)
	if err != nil {
		return domain.ConfigResult{
			Content: DefaultTargetConfig(),
			Warnings: []domain.Warning{{
				Message: "could not parse Percy config, emitting default Sauce Labs Visual config",
				Details: err.Error(),
			}},
		}
	}

	target := &TargetConfig{}
	var warnings []domain.Warning

	for _, key := range sortedKeys(src) {
		value := src[key]
		switch {
		case key == "version":
			// Percy schema boilerplate, dropped without comment.
		case key == "snapshot":
			warnings = append(warnings, mapPercySnapshot(target, value)...)
		case passthroughKeys[key]:
			mergePassthrough(target, key, value)
		default:
			warnings = append(warnings, nonMappable(domain.PlatformPercy, key))
		}
	}

	return domain.ConfigResult{Content: target.Render(), Warnings: warnings}
}

// mapPercySnapshot copies snapshot.widths into web.viewports as single-width
// entries and warns on every other snapshot-level option.
func mapPercySnapshot(target *TargetConfig, value any) []domain.Warning {
	snap, ok := toStringMap(value)
	if !ok {
		return []domain.Warning{nonMappable(domain.PlatformPercy, "snapshot")}
	}

	var warnings []domain.Warning
	for _, key := range sortedKeys(snap) {
		if key == "widths" {
			for _, w := range toIntSlice(snap[key]) {
				target.Web.Viewports = append(target.Web.Viewports, []int{w})
			}
			continue
		}
		warnings = append(warnings, nonMappable(domain.PlatformPercy, "snapshot."+key))
	}
	return warnings
}

// parseConfigDocument parses a configuration document into a generic map.
// JS/TS-authored configs go through the restricted literal evaluator; YAML
// covers both YAML and JSON data files.
func parseConfigDocument(text string) (map[string]any, error) {
	if strings.Contains(text, "module.exports") || strings.Contains(text, "export default") {
		return literal.ParseModuleExport(text)
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("document is empty")
	}
	return doc, nil
}

// toStringMap normalizes the map shapes produced by yaml.v3 and the literal
// evaluator.
func toStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

// toIntSlice extracts integer entries from a generic list, skipping anything
// that is not numeric.
func toIntSlice(v any) []int {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(list))
	for _, item := range list {
		if n, ok := toInt(item); ok {
			out = append(out, n)
		}
	}
	return out
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
