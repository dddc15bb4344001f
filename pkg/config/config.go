// Package config provides parsing of the hooksmith.yaml configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/blairham/hooksmith/pkg/errors"
)

// DefaultPath is the default name of the hooksmith configuration file
const DefaultPath = "hooksmith.yaml"

// commandsKey is the only per-hook key the engine interprets
const commandsKey = "commands"

// HookDefinition is the ordered list of shell commands bound to one hook name
type HookDefinition struct {
	Name     string
	Commands []string
}

// HookConfig maps hook names to their definitions.
// Hooks keep the order in which they appear in the configuration file.
type HookConfig struct {
	index map[string]int
	hooks []HookDefinition
}

// New builds a HookConfig from definitions, in the given order.
// Later definitions with a repeated name are rejected.
func New(defs ...HookDefinition) (*HookConfig, error) {
	cfg := &HookConfig{index: make(map[string]int, len(defs))}
	for _, def := range defs {
		if err := CheckName(def.Name); err != nil {
			return nil, err
		}
		if _, dup := cfg.index[def.Name]; dup {
			return nil, fmt.Errorf("duplicate hook '%s'", def.Name)
		}
		cfg.index[def.Name] = len(cfg.hooks)
		cfg.hooks = append(cfg.hooks, HookDefinition{
			Name:     def.Name,
			Commands: append([]string(nil), def.Commands...),
		})
	}
	return cfg, nil
}

// Hooks returns the configured hook definitions in configuration order
func (c *HookConfig) Hooks() []HookDefinition {
	if c == nil {
		return nil
	}
	return c.hooks
}

// Names returns the configured hook names in configuration order
func (c *HookConfig) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.hooks))
	for i, h := range c.hooks {
		names[i] = h.Name
	}
	return names
}

// Get looks up a hook definition by exact name
func (c *HookConfig) Get(name string) (HookDefinition, bool) {
	if c == nil {
		return HookDefinition{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return HookDefinition{}, false
	}
	return c.hooks[i], true
}

// Has reports whether name is configured
func (c *HookConfig) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Len returns the number of configured hooks
func (c *HookConfig) Len() int {
	if c == nil {
		return 0
	}
	return len(c.hooks)
}

// Load reads and parses the configuration file at path.
// An empty path means DefaultPath.
func Load(path string) (*HookConfig, error) {
	if path == "" {
		path = DefaultPath
	}
	path = filepath.Clean(path)

	data, err := os.ReadFile(path) // #nosec G304 -- path is user-supplied config location
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Config(path, errors.ErrConfigNotFound)
		}
		return nil, errors.Config(path, fmt.Errorf("%w: %w", errors.ErrConfigRead, err))
	}

	return Parse(path, data)
}

// Parse parses configuration content; path is only used in error messages.
func Parse(path string, data []byte) (*HookConfig, error) {
	cfg := &HookConfig{index: map[string]int{}}

	// An empty file is an empty configuration
	if strings.TrimSpace(string(data)) == "" {
		return cfg, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Parse(path, err.Error())
	}
	if len(doc.Content) == 0 {
		return cfg, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return cfg, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Parse(path, fmt.Sprintf(
			"line %d: expected a mapping of hook names to hook definitions", root.Line))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]

		name := keyNode.Value
		if keyNode.Kind != yaml.ScalarNode || name == "" {
			return nil, errors.Parse(path, fmt.Sprintf("line %d: hook name must be a non-empty string", keyNode.Line))
		}
		if err := CheckName(name); err != nil {
			return nil, errors.Parse(path, fmt.Sprintf("line %d: %v", keyNode.Line, err))
		}
		if _, dup := cfg.index[name]; dup {
			return nil, errors.Parse(path, fmt.Sprintf("line %d: hook '%s' is defined more than once", keyNode.Line, name))
		}

		commands, err := parseHook(name, valueNode)
		if err != nil {
			return nil, errors.Parse(path, err.Error())
		}

		cfg.index[name] = len(cfg.hooks)
		cfg.hooks = append(cfg.hooks, HookDefinition{Name: name, Commands: commands})
	}

	return cfg, nil
}

// CheckName rejects hook names that would not stay inside the hooks
// directory once joined to it.
func CheckName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: '%s'", errors.ErrInvalidName, name)
	}
	return nil
}

// parseHook extracts the commands sequence from a single hook record
func parseHook(name string, node *yaml.Node) ([]string, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: hook '%s' must be a mapping with a '%s' list", node.Line, name, commandsKey)
	}

	var commandsNode *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == commandsKey {
			commandsNode = node.Content[i+1]
			break
		}
	}
	if commandsNode == nil {
		return nil, fmt.Errorf("line %d: hook '%s' is missing required '%s'", node.Line, name, commandsKey)
	}
	commandsNode = resolveAlias(commandsNode)
	if commandsNode.Tag == "!!null" {
		return []string{}, nil
	}
	if commandsNode.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: '%s' of hook '%s' must be a list of strings", commandsNode.Line, commandsKey, name)
	}

	commands := make([]string, 0, len(commandsNode.Content))
	for j, item := range commandsNode.Content {
		item = resolveAlias(item)
		if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
			return nil, fmt.Errorf("line %d: command %d of hook '%s' must be a string", item.Line, j+1, name)
		}
		if err := checkCommand(item.Value); err != nil {
			return nil, fmt.Errorf("line %d: command %d of hook '%s' %w", item.Line, j+1, name, err)
		}
		commands = append(commands, item.Value)
	}

	return commands, nil
}

// resolveAlias follows YAML aliases so anchored command lists can be shared
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// checkCommand enforces one non-blank line per command, since each command
// becomes exactly one line of the generated script.
func checkCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("is empty")
	}
	if strings.ContainsAny(command, "\r\n") {
		return fmt.Errorf("spans multiple lines")
	}
	return nil
}
