// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog holds the embedded descriptor of known ports.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed ports.yml
var portsYAML []byte

type Platform string

const (
	PlatformLinux    Platform = "linux"
	PlatformWindows  Platform = "windows"
	PlatformIOS      Platform = "ios"
	PlatformAndroid  Platform = "android"
	PlatformMacOS    Platform = "macos"
	PlatformAgnostic Platform = "agnostic"
)

// UnmarshalYAML rejects values outside the known platform set.
func (p *Platform) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch Platform(s) {
	case PlatformLinux, PlatformWindows, PlatformIOS, PlatformAndroid, PlatformMacOS, PlatformAgnostic:
		*p = Platform(s)
		return nil
	default:
		return fmt.Errorf("line %d: unknown platform %q", node.Line, s)
	}
}

type Collaborator struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
}

type Repository struct {
	Name               string         `yaml:"name"`
	URL                string         `yaml:"url"`
	CurrentMaintainers []Collaborator `yaml:"current-maintainers"`
	PastMaintainers    []Collaborator `yaml:"past-maintainers"`
}

type Category struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Emoji       string `yaml:"emoji"`
}

type Port struct {
	Name       string     `yaml:"name"`
	Key        string     `yaml:"key"`
	Color      string     `yaml:"color"`
	Repository Repository `yaml:"repository"`
	Categories []Category `yaml:"categories"`
	Platform   []Platform `yaml:"platform"`
}

type Ports struct {
	Ports         []Port         `yaml:"ports"`
	Collaborators []Collaborator `yaml:"collaborators"`
}

// Load parses the embedded descriptor.
func Load() (*Ports, error) {
	return Parse(portsYAML)
}

// Parse decodes a ports descriptor. Unknown keys are rejected.
func Parse(data []byte) (*Ports, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var p Ports
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse ports YAML: %w", err)
	}
	for i, port := range p.Ports {
		if port.Key == "" {
			return nil, fmt.Errorf("port at index %d missing key", i)
		}
		if port.Repository.URL == "" {
			return nil, fmt.Errorf("port %s missing repository url", port.Key)
		}
	}
	return &p, nil
}

// Lookup finds the port whose repository URL matches url, ignoring a trailing
// "/" or ".git" and letter case.
func (p *Ports) Lookup(url string) (Port, bool) {
	want := normalizeURL(url)
	for _, port := range p.Ports {
		if normalizeURL(port.Repository.URL) == want {
			return port, true
		}
	}
	return Port{}, false
}

func normalizeURL(u string) string {
	u = strings.TrimSuffix(strings.TrimSpace(u), "/")
	u = strings.TrimSuffix(u, ".git")
	return strings.ToLower(u)
}
