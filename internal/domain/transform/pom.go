package transform

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/vismigrate/vismigrate/internal/domain"
)

// sauceJavaClient is the Maven coordinate every matched source dependency is
// rewritten to.
var sauceJavaClient = mavenCoordinate{
	GroupID:    "com.saucelabs.visual",
	ArtifactID: "java-client",
	Version:    "0.10.0",
}

type mavenCoordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// pomDependencyTable maps source-platform Maven dependencies to their target
// coordinate. Keyed by groupId:artifactId.
var pomDependencyTable = map[string]mavenCoordinate{
	"io.percy:percy-java-selenium":      sauceJavaClient,
	"io.percy:percy-appium-app":         sauceJavaClient,
	"com.applitools:eyes-selenium-java5": sauceJavaClient,
	"com.applitools:eyes-selenium-java4": sauceJavaClient,
	"com.applitools:eyes-selenium-java3": sauceJavaClient,
	"com.applitools:eyes-appium-java5":   sauceJavaClient,
	"com.applitools:eyes-appium-java4":   sauceJavaClient,
}

// pomPluginRemovals lists build plugins with no target equivalent; they are
// removed and recorded rather than substituted.
var pomPluginRemovals = map[string]bool{
	"io.percy:percy-maven-plugin": true,
}

// PomXML rewrites a Maven build manifest, substituting known source-platform
// coordinates with the Sauce Labs Visual java client. It never fails: an
// unparsable document is returned unchanged with one warning and no changes.
// Both single-element and repeated <dependency>/<plugin> children are
// handled uniformly by walking the element tree.
func PomXML(documentText string) domain.PomResult {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(documentText); err != nil {
		return domain.PomResult{
			Content: documentText,
			Warnings: []domain.Warning{{
				Message: "could not parse pom.xml, leaving it unchanged",
				Details: err.Error(),
			}},
		}
	}

	root := doc.Root()
	if root == nil || root.Tag != "project" {
		return domain.PomResult{
			Content: documentText,
			Warnings: []domain.Warning{{
				Message: "pom.xml has no <project> root, leaving it unchanged",
			}},
		}
	}

	var changes []domain.PomChange
	changes = append(changes, rewriteDependencies(root)...)
	changes = append(changes, rewritePlugins(root)...)

	if len(changes) == 0 {
		return domain.PomResult{Content: documentText}
	}

	out, err := doc.WriteToString()
	if err != nil {
		return domain.PomResult{
			Content: documentText,
			Warnings: []domain.Warning{{
				Message: "could not serialize rewritten pom.xml, leaving it unchanged",
				Details: err.Error(),
			}},
		}
	}
	return domain.PomResult{Content: out, Changes: changes}
}

func rewriteDependencies(project *etree.Element) []domain.PomChange {
	var changes []domain.PomChange
	for _, deps := range project.FindElements("//dependencies") {
		for _, dep := range deps.SelectElements("dependency") {
			if change := substituteCoordinate(dep); change != nil {
				changes = append(changes, *change)
			}
		}
	}
	return changes
}

func rewritePlugins(project *etree.Element) []domain.PomChange {
	var changes []domain.PomChange
	for _, plugins := range project.FindElements("//plugins") {
		for _, plugin := range plugins.SelectElements("plugin") {
			groupID := childText(plugin, "groupId")
			artifactID := childText(plugin, "artifactId")
			if !pomPluginRemovals[groupID+":"+artifactID] {
				continue
			}
			plugins.RemoveChild(plugin)
			changes = append(changes, domain.PomChange{
				Type:        domain.PomPluginRemove,
				GroupID:     groupID,
				ArtifactID:  artifactID,
				OldVersion:  childText(plugin, "version"),
				Description: fmt.Sprintf("removed build plugin %s:%s (no Sauce Labs Visual equivalent)", groupID, artifactID),
			})
		}
	}
	return changes
}

func substituteCoordinate(dep *etree.Element) *domain.PomChange {
	groupID := childText(dep, "groupId")
	artifactID := childText(dep, "artifactId")
	target, ok := pomDependencyTable[groupID+":"+artifactID]
	if !ok {
		return nil
	}

	oldVersion := childText(dep, "version")
	setChildText(dep, "groupId", target.GroupID)
	setChildText(dep, "artifactId", target.ArtifactID)
	setChildText(dep, "version", target.Version)

	return &domain.PomChange{
		Type:        domain.PomDependencyUpdate,
		GroupID:     groupID,
		ArtifactID:  artifactID,
		OldVersion:  oldVersion,
		NewVersion:  target.Version,
		Description: fmt.Sprintf("replaced %s:%s with %s:%s", groupID, artifactID, target.GroupID, target.ArtifactID),
	}
}

func childText(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return el.Text()
	}
	return ""
}

func setChildText(parent *etree.Element, tag, text string) {
	el := parent.SelectElement(tag)
	if el == nil {
		el = parent.CreateElement(tag)
	}
	el.SetText(text)
}
