package actor

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config describes a stage's actors and their command sets.
//
//	debug: true
//	maxQueuedTweens: 20
//	commands:
//	  On: "diffusealpha,0;linear,0.5;diffusealpha,1"
//	actors:
//	  logo: [On]
//	remote:
//	  url: tcp://localhost:1883
//	  topic: actors/commands
type Config struct {
	Debug           bool `yaml:"debug"`
	MaxQueuedTweens int  `yaml:"maxQueuedTweens"`
	// MuteWarnings silences data warnings (unknown commands, bad args) for
	// the whole process, not just the configured stage. Apply sets the
	// output with SetWarningOutput(nil); call SetWarningOutput again to
	// bring warnings back.
	MuteWarnings bool `yaml:"muteWarnings"`

	// Commands maps a command set name to its text form.
	Commands map[string]string `yaml:"commands"`
	// Actors maps an actor name to the command sets it is given. The first
	// set is played once when the actor is created.
	Actors map[string][]string `yaml:"actors"`

	Remote RemoteConfig `yaml:"remote"`
}

// RemoteConfig holds the MQTT settings for remote command input.
type RemoteConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"clientID"`
	Topic    string `yaml:"topic"`
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	cfg := new(Config)
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML config from memory.
func ParseConfig(data []byte) (*Config, error) {
	cfg := new(Config)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// CommandSets parses every command string once. Sets with bad statements
// keep their good ones; the returned error joins every skipped statement.
func (c *Config) CommandSets() (map[string]Commands, error) {
	sets := make(map[string]Commands, len(c.Commands))
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(c.Commands)) {
		cmds, err := ParseCommands(c.Commands[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("command set %q: %w", name, err))
		}
		sets[strings.ToLower(name)] = cmds
	}
	return sets, errors.Join(errs...)
}

// Apply configures s from the config. Named actors missing from the stage
// are created and added in name order. Each actor receives the command sets
// listed for it and plays the first one. Data errors are logged, skipped
// and returned joined. With MuteWarnings set, warnings stay muted after
// Apply returns.
func (c *Config) Apply(s *Stage) error {
	if c.MuteWarnings {
		SetWarningOutput(nil)
	}
	s.SetDebugMode(c.Debug)

	sets, err := c.CommandSets()
	var errs []error
	if err != nil {
		errs = append(errs, err)
	}

	for _, name := range slices.Sorted(maps.Keys(c.Actors)) {
		a := s.Find(name)
		if a == nil {
			a = New(name)
			s.Add(a)
		}
		if c.MaxQueuedTweens > 0 {
			a.SetMaxQueuedTweens(c.MaxQueuedTweens)
		}
		setNames := c.Actors[name]
		for _, setName := range setNames {
			cmds, ok := sets[strings.ToLower(setName)]
			if !ok {
				err := fmt.Errorf("actor %q: unknown command set %q", name, setName)
				warnf("%v", err)
				errs = append(errs, err)
				continue
			}
			a.AddCommand(setName, cmds)
		}
		if len(setNames) > 0 && a.HasCommand(setNames[0]) {
			a.PlayCommand(setNames[0])
		}
	}
	return errors.Join(errs...)
}
