// Package config loads a board and its controllers from a YAML
// descriptor: one file naming every controller's port budget and
// program, and the port links to wire between them.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Yuffster/mcx4/board"
	"github.com/Yuffster/mcx4/mc"
	"github.com/Yuffster/mcx4/mcerr"
	"github.com/Yuffster/mcx4/port"
)

// ControllerSpec is one controller entry of a board descriptor.
type ControllerSpec struct {
	Name    string `yaml:"name"`
	GPIO    int    `yaml:"gpio"`
	XBUS    int    `yaml:"xbus"`
	Dats    int    `yaml:"dats"`
	Program string `yaml:"program"`
}

// BoardSpec is the top-level shape of a board descriptor file.
type BoardSpec struct {
	Controllers []ControllerSpec `yaml:"controllers"`
	Links       [][]string       `yaml:"links"`
	ATUs        int              `yaml:"atus"`
}

// LoadBoard parses data as a board descriptor, builds a board.Board
// and its Microcontrollers, compiles each controller's program, and
// links the ports named by the descriptor's links entries.
func LoadBoard(data []byte) (*board.Board, map[string]*mc.Microcontroller, error) {
	var spec BoardSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, nil, mcerr.Wrap(mcerr.Command, err, "invalid board descriptor")
	}

	reg := port.NewRegistry()
	b := board.New(reg)
	controllers := map[string]*mc.Microcontroller{}

	for _, cs := range spec.Controllers {
		if _, exists := controllers[cs.Name]; exists {
			return nil, nil, mcerr.New(mcerr.Command, "duplicate controller name: %s", cs.Name)
		}
		m := mc.New(reg, cs.Name, cs.GPIO, cs.XBUS, cs.Dats)
		m.Compile(cs.Program)
		controllers[cs.Name] = m
		b.Add(m)
	}

	for _, link := range spec.Links {
		if len(link) != 2 {
			return nil, nil, mcerr.New(mcerr.Command, "link entry must name exactly two ports: %v", link)
		}
		a, err := resolvePort(controllers, link[0])
		if err != nil {
			return nil, nil, err
		}
		b2, err := resolvePort(controllers, link[1])
		if err != nil {
			return nil, nil, err
		}
		if err := port.Link(a, b2); err != nil {
			return nil, nil, err
		}
	}

	return b, controllers, nil
}

func resolvePort(controllers map[string]*mc.Microcontroller, ref string) (*port.Port, error) {
	parts := strings.SplitN(ref, ".", 2)
	if len(parts) != 2 {
		return nil, mcerr.New(mcerr.Command, "malformed port reference: %s", ref)
	}
	m, ok := controllers[parts[0]]
	if !ok {
		return nil, mcerr.New(mcerr.Command, "unknown controller: %s", parts[0])
	}
	p, err := m.Port(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ref, err)
	}
	return p, nil
}
