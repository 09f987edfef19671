// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type report struct {
	RunID  string `json:"run_id" yaml:"run_id" toml:"run_id"`
	Op     string `json:"op" yaml:"op" toml:"op"`
	DryRun bool   `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	Steps  []step `json:"steps" yaml:"steps" toml:"steps"`
}

type step struct {
	Source string `json:"source" yaml:"source" toml:"source"`
	Dest   string `json:"dest" yaml:"dest" toml:"dest"`
}

func writeReport(w io.Writer, format string, r *report) error {
	switch format {
	case "text":
		return writeText(w, r)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeText(w io.Writer, r *report) error {
	suffix := ""
	if r.DryRun {
		suffix = " (dry run)"
	}
	if _, err := fmt.Fprintf(w, "run %s%s\n", r.RunID, suffix); err != nil {
		return err
	}
	for _, st := range r.Steps {
		if _, err := fmt.Fprintf(w, "%s %s -> %s\n", r.Op, st.Source, st.Dest); err != nil {
			return err
		}
	}
	return nil
}
