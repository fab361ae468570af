package transform

import (
	"github.com/vismigrate/vismigrate/internal/domain"
)

// ApplitoolsConfig converts an Applitools configuration document
// (applitools.config.js, eyes.config.js or eyes.json) into the target
// document. It never fails: an unparsable source yields the default target
// document plus one warning.
func ApplitoolsConfig(documentText string) domain.ConfigResult {
	src, err := parseConfigDocument(documentText)
	if err != nil {
		return domain.ConfigResult{
			Content: DefaultTargetConfig(),
			Warnings: []domain.Warning{{
				Message: "could not parse Applitools config, emitting default Sauce Labs Visual config",
				Details: err.Error(),
			}},
		}
	}

	target := &TargetConfig{}
	var warnings []domain.Warning

	for _, key := range sortedKeys(src) {
		value := src[key]
		switch {
		case key == "browser":
			warnings = append(warnings, partitionBrowsers(target, value)...)
		case key == "apiKey":
			warnings = append(warnings, domain.Warning{
				Message: "Applitools option \"apiKey\" is not carried over",
				Details: "authenticate with the SAUCE_USERNAME and SAUCE_ACCESS_KEY environment variables instead",
			})
		case passthroughKeys[key]:
			mergePassthrough(target, key, value)
		default:
			warnings = append(warnings, nonMappable(domain.PlatformApplitools, key))
		}
	}

	return domain.ConfigResult{Content: target.Render(), Warnings: warnings}
}

// partitionBrowsers splits Applitools' mixed browser array into desktop
// entries (width+height+name) and mobile entries (deviceName). A single
// object is accepted in place of a one-element array.
func partitionBrowsers(target *TargetConfig, value any) []domain.Warning {
	entries, ok := value.([]any)
	if !ok {
		// Cardinality-one shorthand: a bare object.
		if single, isMap := toStringMap(value); isMap {
			entries = []any{single}
		} else {
			return []domain.Warning{nonMappable(domain.PlatformApplitools, "browser")}
		}
	}

	var warnings []domain.Warning
	for _, raw := range entries {
		entry, isMap := toStringMap(raw)
		if !isMap {
			warnings = append(warnings, domain.Warning{
				Message: "unrecognized entry in Applitools \"browser\" array",
				Details: "expected an object with width/height/name or deviceName",
			})
			continue
		}

		if device, ok := entry["deviceName"].(string); ok {
			if target.Mobile == nil {
				target.Mobile = &MobileConfig{}
			}
			target.Mobile.Devices = append(target.Mobile.Devices, device)
			continue
		}

		width, hasW := toInt(entry["width"])
		height, hasH := toInt(entry["height"])
		name, hasName := entry["name"].(string)
		if hasW && hasH && hasName {
			target.Web.Browsers = appendUnique(target.Web.Browsers, name)
			target.Web.Viewports = append(target.Web.Viewports, []int{width, height})
			continue
		}

		warnings = append(warnings, domain.Warning{
			Message: "unrecognized entry in Applitools \"browser\" array",
			Details: "expected an object with width/height/name or deviceName",
		})
	}
	return warnings
}

func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}
