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

// readmeTopics extracts the topics listed in readme.md as "* name: ...".
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// Every topic of the readme can be loaded, and every file is listed in the readme.
	listed := readmeTopics(t)
	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".md")
		if name != "readme" && !slices.Contains(listed, name) {
			t.Errorf("topic %q is not listed in docs/readme.md", name)
		}
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	sorted := slices.Clone(listed)
	slices.Sort(sorted)
	if !slices.Equal(all, sorted) {
		t.Errorf("GetAllTopics() = %v, want %v", all, sorted)
	}
}

func TestTopicTitles(t *testing.T) {
	// Each topic starts with exactly one level one heading.
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range append(topics, "readme") {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			src := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(src))

			var h1 int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
					h1++
				}
				return ast.WalkContinue, nil
			})
			if h1 != 1 {
				t.Errorf("topic %q has %d level one headings, want 1", topic, h1)
			}
			if first := root.FirstChild(); first == nil || first.Kind() != ast.KindHeading {
				t.Errorf("topic %q does not start with a heading", topic)
			}
		})
	}
}

func TestGetTopics(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"# Recommendation Lifecycle", "# Journals", "# Dates"} {
		if !strings.Contains(all, title) {
			t.Errorf("GetTopic(\"*\") misses %q", title)
		}
	}
	if strings.Contains(all, "# jnl\n") {
		t.Error("GetTopic(\"*\") should not include the readme")
	}

	if _, err := GetTopics("lifecycle", "nope"); err == nil {
		t.Error("GetTopics() with an unknown topic should fail")
	}
}
