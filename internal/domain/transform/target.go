// Package transform converts platform-specific configuration documents,
// Maven manifests, and test source files into their Sauce Labs Visual
// equivalents. Every transformer is a pure function of its input and never
// returns an error: a malformed document yields a platform-appropriate
// default plus one warning, so a single bad file can never halt a batch
// migration.
package transform

import (
	"strings"

	"github.com/fatih/camelcase"
	"gopkg.in/yaml.v3"

	"github.com/vismigrate/vismigrate/internal/domain"
)

// TargetConfig is the Sauce Labs Visual suite configuration emitted by all
// config transformers.
type TargetConfig struct {
	Web    WebConfig     `yaml:"web"`
	Mobile *MobileConfig `yaml:"mobile,omitempty"`
}

// WebConfig holds browser/viewport matrix settings. Viewport entries are
// either [width] (width-only sources such as Percy) or [width, height].
type WebConfig struct {
	Browsers  []string `yaml:"browsers,omitempty"`
	Viewports [][]int  `yaml:"viewports,omitempty"`
}

// MobileConfig holds the device list for mobile rendering.
type MobileConfig struct {
	Devices []string `yaml:"devices,omitempty"`
}

// Render serializes the target config as canonical YAML.
func (t *TargetConfig) Render() string {
	out, err := yaml.Marshal(t)
	if err != nil {
		// Marshal of this struct cannot fail; keep the contract anyway.
		return defaultTargetYAML
	}
	return string(out)
}

const defaultTargetYAML = `web:
  browsers:
    - chrome
  viewports:
    - [1366, 768]
`

// DefaultTargetConfig is the hardcoded fallback document returned when a
// source config cannot be parsed.
func DefaultTargetConfig() string {
	return defaultTargetYAML
}

// passthroughKeys are keys already in the target schema. They survive a
// re-run of a transformer without producing non-mappable-field warnings.
var passthroughKeys = map[string]bool{
	"web":    true,
	"mobile": true,
}

// nonMappable builds the single warning attached to a source field that has
// no equivalent in the target schema.
func nonMappable(platform domain.Platform, key string) domain.Warning {
	return domain.Warning{
		Message: platform.DisplayName() + " option " + quoteKey(key) + " has no Sauce Labs Visual equivalent",
		Details: "set " + humanize(key) + " via a saucectl CLI flag or environment variable instead",
	}
}

func quoteKey(key string) string {
	return "\"" + key + "\""
}

// humanize splits a camelCase or kebab-case field name into lowercase words
// for warning hints.
func humanize(key string) string {
	key = strings.ReplaceAll(key, "-", " ")
	key = strings.ReplaceAll(key, ".", " ")
	words := camelcase.Split(key)
	for i, w := range words {
		words[i] = strings.ToLower(strings.TrimSpace(w))
	}
	joined := strings.Join(words, " ")
	return strings.Join(strings.Fields(joined), " ")
}

// mergePassthrough decodes an already-target-shaped key back into the
// target config so idempotent re-runs preserve prior output.
func mergePassthrough(target *TargetConfig, key string, value any) {
	raw, err := yaml.Marshal(value)
	if err != nil {
		return
	}
	switch key {
	case "web":
		_ = yaml.Unmarshal(raw, &target.Web)
	case "mobile":
		var m MobileConfig
		if yaml.Unmarshal(raw, &m) == nil {
			target.Mobile = &m
		}
	}
}
