package transform

import "github.com/vismigrate/vismigrate/internal/domain"

// Config dispatches a configuration document to the transformer for its
// source platform. The switch is exhaustive over the closed platform set so
// adding a platform forces this site to be updated.
func Config(platform domain.Platform, documentText string) domain.ConfigResult {
	switch platform {
	case domain.PlatformPercy:
		return PercyConfig(documentText)
	case domain.PlatformApplitools:
		return ApplitoolsConfig(documentText)
	case domain.PlatformSauce:
		// Already in the target schema; nothing to rewrite.
		return domain.ConfigResult{Content: documentText}
	default:
		return domain.ConfigResult{
			Content: DefaultTargetConfig(),
			Warnings: []domain.Warning{{
				Message: "unknown source platform " + string(platform),
			}},
		}
	}
}
