package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type report struct {
	Mode      string   `json:"mode" yaml:"mode"`
	OK        bool     `json:"ok" yaml:"ok"`
	Values    []string `json:"values,omitempty" yaml:"values,omitempty"`
	Error     string   `json:"error,omitempty" yaml:"error,omitempty"`
	Cancelled bool     `json:"cancelled,omitempty" yaml:"cancelled,omitempty"`
	Entries   []entry  `json:"entries,omitempty" yaml:"entries,omitempty"`
}

type entry struct {
	Index     int    `json:"index" yaml:"index"`
	Value     string `json:"value,omitempty" yaml:"value,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	Cancelled bool   `json:"cancelled,omitempty" yaml:"cancelled,omitempty"`
}

func render(w io.Writer, format string, rep report) error {
	switch format {
	case formatText:
		return renderText(w, rep)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatText, formatJSON, formatYAML)
	}
}

func renderText(w io.Writer, rep report) error {
	if rep.Mode == modeAll {
		if !rep.OK {
			_, err := fmt.Fprintf(w, "error: %s\n", rep.Error)
			return err
		}
		for _, v := range rep.Values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}

	for _, e := range rep.Entries {
		status, text := "ok", e.Value
		switch {
		case e.Cancelled:
			status, text = "cancelled", e.Error
		case e.Error != "":
			status, text = "error", e.Error
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\n", e.Index, status, text); err != nil {
			return err
		}
	}
	return nil
}
