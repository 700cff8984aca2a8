// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.yaml.in/yaml/v3"
)

// A Scenario is a named sequence of test vectors run after a reset.
//
// Scenarios are usually loaded from YAML:
//
//	- name: four_bit_adder
//	  reset: 10
//	  steps:
//	    - {note: "2 + 1 = 3", ui_in: 0x21, expect: 3}
//	    - {note: "7 + 8 = 15", ui_in: 0x87, expect: 15}
//
type Scenario struct {
	Name string `yaml:"name"`
	// Reset is the number of cycles reset is held low before the first
	// vector. DefaultResetCycles is used if 0.
	Reset int      `yaml:"reset,omitempty"`
	Steps []Vector `yaml:"steps"`
}

// A Vector sets some of the device inputs, runs the clock and checks the
// outputs. Inputs that are not set keep their previous value.
//
type Vector struct {
	// Note is logged before the vector is applied.
	Note  string `yaml:"note,omitempty"`
	UIIn  *uint8 `yaml:"ui_in,omitempty"`
	UIOIn *uint8 `yaml:"uio_in,omitempty"`
	Ena   *bool  `yaml:"ena,omitempty"`
	RstN  *bool  `yaml:"rst_n,omitempty"`
	// Reset holds rst_n low for that many cycles before the inputs are
	// applied.
	Reset int `yaml:"reset,omitempty"`
	// Cycles is the number of clock cycles to run before checking outputs.
	// Defaults to 1.
	Cycles int `yaml:"cycles,omitempty"`
	// Expected uo_out value.
	Expect *uint8 `yaml:"expect,omitempty"`
	// Expected uio_out value.
	ExpectUIO *uint8 `yaml:"expect_uio,omitempty"`
}

func (s *Scenario) check() error {
	if s.Name == "" {
		return errors.New("scenario without a name")
	}
	if s.Reset < 0 {
		return errors.Errorf("%s: negative reset cycle count", s.Name)
	}
	for i, v := range s.Steps {
		if v.Reset < 0 || v.Cycles < 0 {
			return errors.Errorf("%s: step %d: negative cycle count", s.Name, i)
		}
	}
	return nil
}

// LoadScenarios decodes a list of scenarios in YAML format from r.
//
func LoadScenarios(r io.Reader) ([]Scenario, error) {
	var ss []Scenario
	if err := yaml.NewDecoder(r).Decode(&ss); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decode scenarios")
	}
	seen := make(map[string]bool, len(ss))
	for i := range ss {
		if err := ss[i].check(); err != nil {
			return nil, err
		}
		if seen[ss[i].Name] {
			return nil, errors.Errorf("duplicate scenario %s", ss[i].Name)
		}
		seen[ss[i].Name] = true
	}
	return ss, nil
}

// LoadScenarioFile loads the scenarios in the named YAML file.
//
func LoadScenarioFile(name string) ([]Scenario, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "load scenarios")
	}
	defer f.Close()
	ss, err := LoadScenarios(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return ss, nil
}
