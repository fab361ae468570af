package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vismigrate/vismigrate/internal/domain/transform"
)

func unmarshalTarget(t *testing.T, content string) transform.TargetConfig {
	t.Helper()
	var target transform.TargetConfig
	require.NoError(t, yaml.Unmarshal([]byte(content), &target))
	return target
}

func TestPercyConfig_WidthsBecomeViewports(t *testing.T) {
	result := transform.PercyConfig("snapshot:\n  widths: [1280, 375]\n")

	assert.Empty(t, result.Warnings)
	target := unmarshalTarget(t, result.Content)
	assert.Equal(t, [][]int{{1280}, {375}}, target.Web.Viewports)
	assert.Nil(t, target.Mobile)
}

func TestPercyConfig_VersionDroppedSilently(t *testing.T) {
	result := transform.PercyConfig("version: 2\nsnapshot:\n  widths: [1024]\n")
	assert.Empty(t, result.Warnings)
}

func TestPercyConfig_NonMappableFieldsWarnOnce(t *testing.T) {
	src := `version: 2
snapshot:
  widths: [1280]
  min-height: 1024
  percy-css: ".ads { display: none; }"
discovery:
  network-idle-timeout: 750
`
	result := transform.PercyConfig(src)

	require.Len(t, result.Warnings, 3)
	var messages []string
	for _, w := range result.Warnings {
		messages = append(messages, w.Message)
	}
	assert.Contains(t, messages, `Percy option "snapshot.min-height" has no Sauce Labs Visual equivalent`)
	assert.Contains(t, messages, `Percy option "snapshot.percy-css" has no Sauce Labs Visual equivalent`)
	assert.Contains(t, messages, `Percy option "discovery" has no Sauce Labs Visual equivalent`)
}

func TestPercyConfig_MalformedYieldsDefaultPlusWarning(t *testing.T) {
	result := transform.PercyConfig("snapshot: [unbalanced")

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "could not parse")
	assert.Equal(t, transform.DefaultTargetConfig(), result.Content)
}

func TestPercyConfig_EmptyDocumentYieldsDefaultPlusWarning(t *testing.T) {
	result := transform.PercyConfig("")
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, transform.DefaultTargetConfig(), result.Content)
}

func TestPercyConfig_JSConfigGoesThroughLiteralEvaluator(t *testing.T) {
	src := `module.exports = {
  version: 2,
  snapshot: {
    widths: [768, 1600],
  },
};`
	result := transform.PercyConfig(src)

	assert.Empty(t, result.Warnings)
	target := unmarshalTarget(t, result.Content)
	assert.Equal(t, [][]int{{768}, {1600}}, target.Web.Viewports)
}

func TestPercyConfig_Idempotent(t *testing.T) {
	first := transform.PercyConfig("snapshot:\n  widths: [1280, 375]\n")
	require.Empty(t, first.Warnings)

	second := transform.PercyConfig(first.Content)
	assert.Empty(t, second.Warnings, "re-running on target-shaped output must not warn")
	assert.Equal(t, unmarshalTarget(t, first.Content), unmarshalTarget(t, second.Content))
}
