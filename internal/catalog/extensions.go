package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type extensionFile struct {
	Tools []extensionTool `yaml:"tools"`
}

type extensionTool struct {
	Name        string   `yaml:"name"`
	Command     string   `yaml:"command"`
	Description string   `yaml:"description"`
	Examples    []string `yaml:"examples"`
}

// Load returns the builtin tools followed by any user extensions from the
// given YAML file. A missing file is not an error; the builtin order is
// never changed by extensions.
func Load(extensionPath string) ([]Tool, error) {
	tools := Builtin()
	if strings.TrimSpace(extensionPath) == "" {
		return tools, nil
	}

	data, err := os.ReadFile(extensionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return tools, nil
		}
		return nil, err
	}

	var ext extensionFile
	if err := yaml.Unmarshal(data, &ext); err != nil {
		return nil, fmt.Errorf("parse %s: %w", extensionPath, err)
	}

	for i, entry := range ext.Tools {
		if strings.TrimSpace(entry.Command) == "" {
			return nil, fmt.Errorf("%s: tool %d has no command", extensionPath, i+1)
		}
		name := entry.Name
		if strings.TrimSpace(name) == "" {
			name = entry.Command
		}
		tools = append(tools, Tool{
			Name:        name,
			Command:     entry.Command,
			Description: strings.TrimSpace(entry.Description),
			Examples:    entry.Examples,
		})
	}
	return tools, nil
}
