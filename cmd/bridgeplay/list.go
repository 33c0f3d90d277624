// ABOUTME: list and check subcommands: print the catalog and verify sample files exist.
// ABOUTME: Output is laid out with lipgloss using a renderer bound to the command's writer.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/2389-research/bridgeplay/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog entries and whether their files are present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, samplesDir, err := a.loadCatalog()
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), cat, os.DirFS(samplesDir))
			return nil
		},
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every catalog entry has its file in the samples directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, samplesDir, err := a.loadCatalog()
			if err != nil {
				return err
			}

			st := newStyles(cmd.OutOrStdout())
			missing := cat.Missing(os.DirFS(samplesDir))
			if len(missing) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), st.ok.Render(fmt.Sprintf("all %d samples present in %s", cat.Len(), samplesDir)))
				return nil
			}

			for _, e := range missing {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", st.missing.Render("missing"), e.ID, e.Filename)
			}
			return fmt.Errorf("%d of %d samples missing from %s", len(missing), cat.Len(), samplesDir)
		},
	}
}

func (a *app) loadCatalog() (*catalog.Catalog, string, error) {
	cfg, err := a.load()
	if err != nil {
		return nil, "", err
	}
	cat, err := cfg.LoadCatalog()
	if err != nil {
		return nil, "", fmt.Errorf("loading catalog: %w", err)
	}
	return cat, cfg.SamplesDir, nil
}

type styles struct {
	header  lipgloss.Style
	cell    lipgloss.Style
	ok      lipgloss.Style
	missing lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("170")),
		cell:    r.NewStyle(),
		ok:      r.NewStyle().Foreground(lipgloss.Color("42")),
		missing: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// printCatalog writes one aligned row per entry in display order.
func printCatalog(w io.Writer, cat *catalog.Catalog, samples fs.FS) {
	st := newStyles(w)
	entries := cat.Entries()

	widths := []int{lipgloss.Width("ID"), lipgloss.Width("LABEL"), lipgloss.Width("FILE")}
	for _, e := range entries {
		widths[0] = max(widths[0], lipgloss.Width(e.ID))
		widths[1] = max(widths[1], lipgloss.Width(e.Label))
		widths[2] = max(widths[2], lipgloss.Width(e.Filename))
	}
	pad := func(style lipgloss.Style, col int, s string) string {
		return style.Width(widths[col] + 2).Render(s)
	}

	fmt.Fprintln(w, pad(st.header, 0, "ID")+pad(st.header, 1, "LABEL")+pad(st.header, 2, "FILE")+st.header.Render("STATUS"))
	for _, e := range entries {
		status := st.ok.Render("ok")
		if !catalog.Exists(samples, e) {
			status = st.missing.Render("missing")
		}
		fmt.Fprintln(w, pad(st.cell, 0, e.ID)+pad(st.cell, 1, e.Label)+pad(st.cell, 2, e.Filename)+status)
	}
}
