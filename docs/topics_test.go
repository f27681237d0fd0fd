package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md, one per
// "* name: description" line.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var listed []string
	re := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := re.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			listed = append(listed, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return listed
}

func TestReadmeListsEveryTopic(t *testing.T) {
	// The readme is the index: every topic it names must load, and every
	// topic file must be named in it.
	listed := readmeTopics(t)

	for _, topic := range listed {
		if _, err := Load(topic); err != nil {
			t.Errorf("readme lists %q but it does not load: %v", topic, err)
		}
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		topic := strings.TrimSuffix(filepath.Base(f), ".md")
		if topic == "readme" {
			continue
		}
		if !slices.Contains(listed, topic) {
			t.Errorf("topic file %q is not listed in readme.md", f)
		}
	}
}

func TestLoadExpandsStar(t *testing.T) {
	all, err := Load("*")
	if err != nil {
		t.Fatalf("failed to load all topics: %v", err)
	}
	names, err := Names()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	for _, name := range names {
		single, err := Load(name)
		if err != nil {
			t.Fatalf("failed to load %q: %v", name, err)
		}
		if !strings.Contains(all, single) {
			t.Errorf("star expansion does not include topic %q", name)
		}
	}

	if _, err := Load("no-such-topic"); err == nil {
		t.Error("loading an unknown topic did not fail")
	}
}

func TestTopicsStartWithHeading(t *testing.T) {
	// Every topic must be valid markdown whose first block is a level-1
	// heading matching the topic name, so concatenated topics read cleanly.
	names, err := Names()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	names = append(names, "readme")

	mdParser := goldmark.DefaultParser()
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			content, err := Load(name)
			if err != nil {
				t.Fatalf("failed to load topic: %v", err)
			}
			source := []byte(content)
			doc := mdParser.Parse(text.NewReader(source))
			heading, ok := doc.FirstChild().(*ast.Heading)
			if !ok {
				t.Fatalf("topic %q does not start with a heading", name)
			}
			if heading.Level != 1 {
				t.Errorf("topic %q starts with a level %d heading, want 1", name, heading.Level)
			}
			title := string(heading.Lines().Value(source))
			if name != "readme" && !strings.Contains(title, name) {
				t.Errorf("topic %q heading is %q, want it to name the topic", name, title)
			}
		})
	}
}
