// Copyright 2026 The Ryzen SMU Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// registerDef is one named SMN register in a register map file. Addresses
// are strings in the file so they can be written in hex.
type registerDef struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`

	addr uint32
}

type registerFile struct {
	Registers []registerDef `yaml:"registers"`
}

// loadRegisterFile reads and validates a yaml register map.
func loadRegisterFile(path string) ([]registerDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file registerFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Registers) == 0 {
		return nil, fmt.Errorf("%s: no registers defined", path)
	}

	seen := make(map[string]bool, len(file.Registers))
	for i := range file.Registers {
		reg := &file.Registers[i]
		if reg.Name == "" {
			return nil, fmt.Errorf("%s: register %d has no name", path, i)
		}
		if seen[reg.Name] {
			return nil, fmt.Errorf("%s: duplicate register %q", path, reg.Name)
		}
		seen[reg.Name] = true

		if reg.addr, err = parseUint32(reg.Address); err != nil {
			return nil, fmt.Errorf("%s: register %q address: %w", path, reg.Name, err)
		}
	}

	return file.Registers, nil
}
