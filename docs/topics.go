// Package docs embeds the teller help topics.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed *.md
var topics embed.FS

// Names lists every available topic, sorted. The readme is the index of the
// topics and is not itself listed.
func Names() ([]string, error) {
	files, err := fs.Glob(topics, "*.md")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, f := range files {
		name := strings.TrimSuffix(f, ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Load returns the content of the named topics, concatenated in order.
// The name "*" expands to every topic; no names at all loads the readme.
func Load(names ...string) (string, error) {
	if len(names) == 0 {
		names = []string{"readme"}
	}

	var expanded []string
	for _, name := range names {
		if name != "*" {
			expanded = append(expanded, name)
			continue
		}
		all, err := Names()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b strings.Builder
	for _, name := range expanded {
		content, err := topics.ReadFile(name + ".md")
		if err != nil {
			return "", fmt.Errorf("unknown topic %q: %w", name, err)
		}
		b.Write(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}
