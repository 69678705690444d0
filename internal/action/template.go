package action

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sant0-9/gloss/internal/config"
)

// Template is a user-defined action: a markdown file with yaml frontmatter
// and a prompt body holding {{text}} and {{context}} placeholders.
type Template struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Body        string `yaml:"-"`
	Path        string `yaml:"-"`
}

// LoadTemplates reads every *.md file in the user actions directory.
// A missing directory is not an error; there are simply no custom actions.
func LoadTemplates() ([]Template, error) {
	dir, err := config.ActionsDir()
	if err != nil {
		return nil, err
	}
	return loadTemplatesFrom(dir)
}

func loadTemplatesFrom(dir string) ([]Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read actions dir: %w", err)
	}

	var templates []Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		tmpl, err := parseTemplate(path)
		if err != nil {
			// A broken template file should not take the editor down.
			continue
		}
		templates = append(templates, *tmpl)
	}

	sort.Slice(templates, func(i, j int) bool { return templates[i].Name < templates[j].Name })
	return templates, nil
}

func parseTemplate(path string) (*Template, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	parts := strings.SplitN(string(content), "---", 3)
	if len(parts) < 3 {
		return nil, fmt.Errorf("%s: missing frontmatter", path)
	}

	var tmpl Template
	if err := yaml.Unmarshal([]byte(parts[1]), &tmpl); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if tmpl.Name == "" {
		tmpl.Name = strings.TrimSuffix(filepath.Base(path), ".md")
	}

	tmpl.Body = strings.TrimSpace(parts[2])
	tmpl.Path = path
	return &tmpl, nil
}

// Render substitutes the paragraph text and context into the template
// body.
func (t *Template) Render(text, context string) string {
	out := strings.ReplaceAll(t.Body, "{{text}}", strings.TrimSpace(text))
	out = strings.ReplaceAll(out, "{{context}}", strings.TrimSpace(context))
	return out
}
