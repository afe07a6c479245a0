package docs

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics ensures the documentation stays in shape: every topic parses as
// markdown with a top-level heading, and every topic is listed in readme.md
// so users can discover it.
func TestTopics(t *testing.T) {
	names, err := AllTopics()
	if err != nil {
		t.Fatalf("AllTopics() failed: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("no documentation topics found")
	}

	readme, err := Topic("readme")
	if err != nil {
		t.Fatalf("failed to read readme: %v", err)
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			content, err := Topic(name)
			if err != nil {
				t.Fatalf("failed to get topic %q: %v", name, err)
			}

			source := []byte(content)
			doc := goldmark.DefaultParser().Parse(text.NewReader(source))
			var hasTitle bool
			err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
					hasTitle = true
					return ast.WalkStop, nil
				}
				return ast.WalkContinue, nil
			})
			if err != nil {
				t.Fatalf("failed to walk topic %q: %v", name, err)
			}
			if !hasTitle {
				t.Errorf("topic %q has no top-level heading", name)
			}

			if !strings.Contains(readme, name) {
				t.Errorf("topic %q is not listed in readme.md", name)
			}
		})
	}
}

func TestTopic_Unknown(t *testing.T) {
	if _, err := Topic("no-such-topic"); err == nil {
		t.Error("Topic() expected an error for an unknown topic, got nil")
	}
}
