package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/app"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/document"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/log"
	"github.com/Fujita-Naoyuki/visual-table-canvas-for-markdown/tableparser"
)

var version = "1.0.0"

var (
	tableFlag int
	checkFlag bool

	rootCmd = &cobra.Command{
		Use:   "mdtable [file]",
		Short: "mdtable is a spreadsheet-like editor for Markdown pipe-tables",
		Long: `mdtable opens a Markdown document, finds its pipe-tables, and lets
you edit them in a terminal grid. Saving writes the edited tables back
over the exact lines they came from, keeping unchanged rows
byte-identical so version-control diffs stay small.`,
		Args:    cobra.ExactArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()
			return app.Run(context.Background(), args[0], tableFlag-1)
		},
	}

	fmtCmd = &cobra.Command{
		Use:   "fmt [file...]",
		Short: "Reformat every pipe-table with canonical column padding",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := false
			for _, path := range args {
				fileChanged, err := formatFile(path, checkFlag)
				if err != nil {
					return err
				}
				changed = changed || fileChanged
			}
			if checkFlag && changed {
				os.Exit(1)
			}
			return nil
		},
	}

	listCmd = &cobra.Command{
		Use:   "list [file]",
		Short: "List the pipe-tables a document contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTables(args[0])
		},
	}
)

func init() {
	rootCmd.Flags().IntVar(&tableFlag, "table", 1, "1-based index of the table to open")
	fmtCmd.Flags().BoolVar(&checkFlag, "check", false, "exit non-zero if any table would be reformatted")
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(listCmd)
}

// formatFile rewrites every table in the file canonically. In check
// mode nothing is written; the return value reports whether anything
// would change.
func formatFile(path string, checkOnly bool) (bool, error) {
	doc, err := document.Load(path)
	if err != nil {
		return false, err
	}

	changed := false
	tables := doc.Tables()
	// Bottom-up so earlier line ranges stay valid as spans change length.
	for i := len(tables) - 1; i >= 0; i-- {
		t := tables[i]
		formatted := tableparser.ToMarkdown(t.Data)
		if formatted == t.RawText {
			continue
		}
		changed = true
		if checkOnly {
			continue
		}
		if err := doc.ReplaceRange(t.StartLine, t.EndLine, formatted); err != nil {
			return false, fmt.Errorf("%s: %w", path, err)
		}
	}

	if checkOnly {
		if changed {
			fmt.Println(path)
		}
		return changed, nil
	}
	if changed {
		if err := doc.Save(); err != nil {
			return false, err
		}
	}
	return changed, nil
}

// listTables prints each table's position and size. Styled output only
// when stdout is a terminal.
func listTables(path string) error {
	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	tables := doc.Tables()
	if len(tables) == 0 {
		fmt.Printf("%s: no tables\n", path)
		return nil
	}

	headerStyle := lipgloss.NewStyle()
	if term.IsTerminal(int(os.Stdout.Fd())) {
		headerStyle = headerStyle.Bold(true)
	}

	for i, t := range tables {
		header := ""
		if len(t.Data) > 0 && len(t.Data[0]) > 0 {
			header = t.Data[0][0]
		}
		fmt.Printf("%s  lines %d-%d, %d rows × %d cols\n",
			headerStyle.Render(fmt.Sprintf("#%d %q", i+1, header)),
			t.StartLine+1, t.EndLine+1, len(t.Data), t.ColumnCount())
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
