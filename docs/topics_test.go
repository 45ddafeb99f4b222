package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// This test ensures that the documentation is in sync with the code.
// It checks that:
// 1. Every topic listed in docs/readme.md can be successfully loaded.
// 2. Every .md file in the docs directory (excluding readme.md) is listed in readme.md.
// 3. Every bash example in the topics invokes a real stok subcommand.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		matches := topicRegex.FindStringSubmatch(scanner.Text())
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}
	for _, topic := range all {
		if topic == "readme" {
			continue
		}
		found := false
		for _, listed := range topicsInReadme {
			if listed == topic {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

// subcommands that examples in the documentation may invoke.
var knownCommands = map[string]bool{
	"add": true, "restock": true, "update": true, "adjust": true, "undo": true,
	"order": true, "process": true,
	"items": true, "low": true, "over": true, "expiring": true,
	"most-stocked": true, "sections": true, "summary": true, "contributions": true,
	"topic": true,
}

func TestTopicExamples(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("failed to list topics: %v", err)
	}

	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("failed to get topic: %v", err)
			}
			src := []byte(content)
			doc := goldmark.New().Parser().Parse(text.NewReader(src))

			err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				fc, ok := n.(*ast.FencedCodeBlock)
				if !ok || string(fc.Language(src)) != "bash" {
					return ast.WalkContinue, nil
				}
				var block strings.Builder
				for i := 0; i < fc.Lines().Len(); i++ {
					seg := fc.Lines().At(i)
					block.Write(seg.Value(src))
				}
				for _, line := range strings.Split(block.String(), "\n") {
					fields := strings.Fields(line)
					if len(fields) < 2 || fields[0] != "stok" {
						continue
					}
					if !knownCommands[fields[1]] {
						t.Errorf("example in topic %q uses unknown subcommand %q", topic, fields[1])
					}
				}
				return ast.WalkContinue, nil
			})
			if err != nil {
				t.Fatalf("failed to walk markdown: %v", err)
			}
		})
	}
}
