// Package manifest reads ecosystem-specific dependency files. Readers are
// pure I/O with no decision logic: a missing or malformed manifest yields no
// signal (nil, false), never an error, so the detection engine can treat
// parse failures as absence.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
)

// PackageJSON reads the JS/TS package manifest and returns the union of
// dependencies and devDependencies.
func PackageJSON(projectRoot string) (map[string]string, bool) {
	data, err := os.ReadFile(filepath.Join(projectRoot, "package.json"))
	if err != nil {
		return nil, false
	}

	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, false
	}

	deps := make(map[string]string, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name, version := range pkg.Dependencies {
		deps[name] = version
	}
	for name, version := range pkg.DevDependencies {
		deps[name] = version
	}
	return deps, true
}

// PomDependencies reads the Java build manifest and returns dependency
// coordinates as "groupId:artifactId" keys mapped to their version.
func PomDependencies(projectRoot string) (map[string]string, bool) {
	data, err := os.ReadFile(filepath.Join(projectRoot, "pom.xml"))
	if err != nil {
		return nil, false
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, false
	}
	root := doc.Root()
	if root == nil {
		return nil, false
	}

	deps := map[string]string{}
	for _, dep := range root.FindElements("//dependencies/dependency") {
		groupID := textOf(dep, "groupId")
		artifactID := textOf(dep, "artifactId")
		if groupID == "" || artifactID == "" {
			continue
		}
		deps[groupID+":"+artifactID] = textOf(dep, "version")
	}
	return deps, true
}

// Requirements reads the Python requirements list and returns package names
// (lowercased, version specifiers stripped) mapped to their raw specifier.
func Requirements(projectRoot string) (map[string]string, bool) {
	data, err := os.ReadFile(filepath.Join(projectRoot, "requirements.txt"))
	if err != nil {
		return nil, false
	}

	deps := map[string]string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}
		name := line
		for _, sep := range []string{"==", ">=", "<=", "~=", "!=", ">", "<", "[", ";", " "} {
			if idx := strings.Index(name, sep); idx != -1 {
				name = name[:idx]
			}
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			deps[name] = line
		}
	}
	return deps, true
}

func textOf(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}
