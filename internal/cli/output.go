// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Token is one emitted token with its rune positions in the input.
type Token struct {
	Index int    `json:"index" yaml:"index"`
	Begin int    `json:"begin" yaml:"begin"`
	End   int    `json:"end" yaml:"end"`
	Text  string `json:"text" yaml:"text"`
}

// Render writes toks to w in the given format.
func Render(w io.Writer, format string, toks []Token) error {
	switch format {
	case "lines":
		for _, t := range toks {
			if _, err := fmt.Fprintln(w, t.Text); err != nil {
				return err
			}
		}
		return nil
	case "table":
		tw := table.NewWriter()
		tw.SetStyle(table.StyleLight)
		tw.SetOutputMirror(w)
		tw.AppendHeader(table.Row{"#", "Begin", "End", "Token"})
		for _, t := range toks {
			tw.AppendRow(table.Row{t.Index, t.Begin, t.End, t.Text})
		}
		tw.Render()
		return nil
	case "yaml":
		b, err := yaml.Marshal(toks)
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		if err := e.Encode(toks); err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		return nil
	default:
		return usageErr(fmt.Errorf("unknown format %q", format))
	}
}
