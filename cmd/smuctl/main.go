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

// smuctl is a diagnostic shim over the ryzen_smu driver: it reports what
// the driver discovered, pokes SMN registers, sends raw SMU commands, and
// dumps the PM table. It is a debugging aid, not a monitor.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/procfs"
	"github.com/urfave/cli/v2"

	"github.com/linnaea/ryzen-smu/internal/log"
	"github.com/linnaea/ryzen-smu/internal/sysfs"
	"github.com/linnaea/ryzen-smu/pkg/smu"
)

func main() {
	app := cli.NewApp()
	app.Name = "smuctl"
	app.Usage = "inspect and exercise the ryzen_smu driver interface"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "sysfs-path",
			Usage: "Override the driver sysfs directory (testing against a staged tree)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: "Logging level (trace, debug, info, warn, error)",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		log.SetLevel(ctx.String("log-level"))
		return nil
	}
	app.Commands = []*cli.Command{
		infoCommand(),
		smnCommand(),
		cmdCommand(),
		pmTableCommand(),
		regsCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "smuctl: %v\n", err)
		os.Exit(1)
	}
}

// openSession opens the driver, honoring the --sysfs-path override.
func openSession(ctx *cli.Context) (*smu.Session, error) {
	if path := ctx.String("sysfs-path"); path != "" {
		fs, err := sysfs.NewFS(path)
		if err != nil {
			return nil, err
		}
		return smu.OpenFS(fs)
	}

	s, err := smu.Open()
	if smu.IsDriverNotPresent(err) {
		// Distinguish "module not loaded" from "not root".
		if fs, ferr := sysfs.NewDefaultFS(); ferr == nil && !fs.Readable(sysfs.Version) && os.Geteuid() != 0 {
			log.Warn("driver is loaded but its files are not readable; smuctl usually requires root")
		}
	}
	return s, err
}

type driverInfo struct {
	CPUModel         string `json:"cpu_model,omitempty"`
	Codename         string `json:"codename"`
	FirmwareVersion  string `json:"firmware_version"`
	PMTableSupported bool   `json:"pm_table_supported"`
	PMTableVersion   uint32 `json:"pm_table_version,omitempty"`
	PMTableSize      uint32 `json:"pm_table_size,omitempty"`
}

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Report the driver's discovered constants",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print in JSON format, if not set, print in text format",
			},
		},
		Action: func(ctx *cli.Context) error {
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			info := driverInfo{
				CPUModel:         cpuModel(),
				Codename:         s.Codename().String(),
				FirmwareVersion:  s.Version().String(),
				PMTableSupported: s.PMTableSupported(),
				PMTableVersion:   s.PMTableVersion(),
				PMTableSize:      s.PMTableSize(),
			}

			if ctx.Bool("json") {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}

			if info.CPUModel != "" {
				fmt.Printf("CPU:              %s\n", info.CPUModel)
			}
			fmt.Printf("Codename:         %s\n", info.Codename)
			fmt.Printf("Firmware version: %s\n", info.FirmwareVersion)
			if info.PMTableSupported {
				fmt.Printf("PM table:         version 0x%x, %d bytes\n", info.PMTableVersion, info.PMTableSize)
			} else {
				fmt.Printf("PM table:         unsupported\n")
			}
			return nil
		},
	}
}

// cpuModel returns the host CPU model name, or "" when procfs is not
// readable. Purely informational.
func cpuModel() string {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return ""
	}
	cpus, err := fs.CPUInfo()
	if err != nil || len(cpus) == 0 {
		return ""
	}
	return cpus[0].ModelName
}

func smnCommand() *cli.Command {
	return &cli.Command{
		Name:  "smn",
		Usage: "Read or write an SMN register",
		Subcommands: []*cli.Command{
			{
				Name:      "read",
				Usage:     "Read a 32-bit register",
				ArgsUsage: "<address>",
				Action: func(ctx *cli.Context) error {
					addr, err := parseUint32(ctx.Args().Get(0))
					if err != nil {
						return fmt.Errorf("address: %w", err)
					}

					s, err := openSession(ctx)
					if err != nil {
						return err
					}
					defer s.Close()

					value, err := s.ReadSMN(addr)
					if err != nil {
						return err
					}
					fmt.Printf("0x%08x: 0x%08x\n", addr, value)
					return nil
				},
			},
			{
				Name:      "write",
				Usage:     "Write a 32-bit register",
				ArgsUsage: "<address> <value>",
				Action: func(ctx *cli.Context) error {
					addr, err := parseUint32(ctx.Args().Get(0))
					if err != nil {
						return fmt.Errorf("address: %w", err)
					}
					value, err := parseUint32(ctx.Args().Get(1))
					if err != nil {
						return fmt.Errorf("value: %w", err)
					}

					s, err := openSession(ctx)
					if err != nil {
						return err
					}
					defer s.Close()

					if err := s.WriteSMN(addr, value); err != nil {
						return err
					}
					log.Infof("wrote 0x%08x to 0x%08x", value, addr)
					return nil
				},
			},
		},
	}
}

func cmdCommand() *cli.Command {
	return &cli.Command{
		Name:  "cmd",
		Usage: "Send a raw SMU command (dangerous; opcodes are codename-specific)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Required: true,
				Usage:    "Command opcode",
			},
			&cli.StringFlag{
				Name:  "args",
				Usage: "Up to six comma-separated 32-bit arguments",
			},
		},
		Action: func(ctx *cli.Context) error {
			op, err := parseUint32(ctx.String("op"))
			if err != nil {
				return fmt.Errorf("op: %w", err)
			}
			args, err := parseArgs(ctx.String("args"))
			if err != nil {
				return fmt.Errorf("args: %w", err)
			}

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.SendCommand(op, &args); err != nil {
				return err
			}
			for i, word := range args {
				fmt.Printf("args[%d]: 0x%08x\n", i, word)
			}
			return nil
		},
	}
}

func pmTableCommand() *cli.Command {
	return &cli.Command{
		Name:  "pm-table",
		Usage: "Dump the raw PM table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Required: true,
				Usage:    "File to write the raw table to",
			},
		},
		Action: func(ctx *cli.Context) error {
			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.PMTableSupported() {
				return fmt.Errorf("pm table unsupported on %s", s.Codename())
			}

			table := make([]byte, s.PMTableSize())
			if err := s.ReadPMTable(table); err != nil {
				return err
			}
			if err := os.WriteFile(ctx.String("output"), table, 0o644); err != nil {
				return err
			}
			log.Infof("wrote %d bytes (table version 0x%x)", len(table), s.PMTableVersion())
			return nil
		},
	}
}

func regsCommand() *cli.Command {
	return &cli.Command{
		Name:  "regs",
		Usage: "Read a named set of SMN registers from a yaml file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Required: true,
				Usage:    "Register map, e.g. registers: [{name: ..., address: 0x...}]",
			},
		},
		Action: func(ctx *cli.Context) error {
			regs, err := loadRegisterFile(ctx.String("file"))
			if err != nil {
				return err
			}

			s, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			for _, reg := range regs {
				value, err := s.ReadSMN(reg.addr)
				if err != nil {
					return fmt.Errorf("%s: %w", reg.Name, err)
				}
				fmt.Printf("%-32s 0x%08x: 0x%08x\n", reg.Name, reg.addr, value)
			}
			return nil
		},
	}
}

// parseUint32 parses a decimal or 0x-prefixed 32-bit value.
func parseUint32(s string) (uint32, error) {
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// parseArgs parses up to six comma-separated words into an argument block;
// missing trailing words stay zero.
func parseArgs(s string) (smu.Args, error) {
	var args smu.Args
	if s == "" {
		return args, nil
	}

	fields := strings.Split(s, ",")
	if len(fields) > smu.ArgCount {
		return args, fmt.Errorf("at most %d arguments, got %d", smu.ArgCount, len(fields))
	}
	for i, f := range fields {
		v, err := parseUint32(strings.TrimSpace(f))
		if err != nil {
			return args, err
		}
		args[i] = v
	}

	return args, nil
}
