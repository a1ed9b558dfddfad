package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"yalv/internal/virsh"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json or yaml)", s)
	}
}

// PrinterOptions contains options for printing domain lists
type PrinterOptions struct {
	Format OutputFormat
	Quiet  bool
}

// Printer writes domain lists for non-interactive use.
type Printer struct {
	out     io.Writer
	options PrinterOptions
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, options PrinterOptions) *Printer {
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &Printer{out: out, options: options}
}

// domainList is the serialized shape of a list result.
type domainList struct {
	Domains []virsh.VMRecord `json:"domains" yaml:"domains"`
	Skipped int              `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// PrintDomains writes res in the configured format.
func (p *Printer) PrintDomains(res virsh.ListResult) error {
	payload := domainList{Domains: res.Records, Skipped: res.Skipped}
	if payload.Domains == nil {
		payload.Domains = []virsh.VMRecord{}
	}

	switch p.options.Format {
	case OutputFormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case OutputFormatYAML:
		data, err := yaml.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = p.out.Write(data)
		return err
	case OutputFormatTable:
		return p.printTable(res)
	default:
		return fmt.Errorf("unsupported output format: %s", p.options.Format)
	}
}

func (p *Printer) printTable(res virsh.ListResult) error {
	if len(res.Records) == 0 {
		if !p.options.Quiet {
			fmt.Fprintln(p.out, text.FgYellow.Sprint("No domains found"))
		}
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("ID"),
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("STATE"),
	})
	for _, rec := range res.Records {
		t.AppendRow(table.Row{formatID(rec.ID), rec.Name, formatState(rec.State)})
	}
	t.Render()

	if p.options.Quiet {
		return nil
	}
	fmt.Fprintf(p.out, "\n%s %s\n",
		text.FgHiBlue.Sprint("Total:"),
		text.FgHiWhite.Sprint(pluralize(len(res.Records), "domain")))
	if res.Skipped > 0 {
		fmt.Fprintln(p.out, text.FgYellow.Sprintf("%s of virsh output could not be read", pluralize(res.Skipped, "line")))
	}
	return nil
}

func formatID(id string) string {
	if id == "-" {
		return text.FgHiBlack.Sprint(id)
	}
	return id
}

// formatState colors a domain state
func formatState(state virsh.VMState) string {
	switch {
	case state.IsRunning():
		return text.FgGreen.Sprint(state.String())
	case state.IsShutOff():
		return text.FgRed.Sprint(state.String())
	default:
		return text.FgYellow.Sprint(state.String())
	}
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
