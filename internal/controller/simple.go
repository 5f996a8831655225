package controller

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "github.com/spacebat/railmv/internal/model"
)

// SimpleUI implements UI using cobra Command's input/output streams. It is
// used for non-terminal invocations and as the rendering backend of the
// interactive TUI.
type SimpleUI struct {
	cmd       *cobra.Command
	assumeYes bool
	in        *bufio.Reader
}

// NewSimpleUI creates a SimpleUI reading prompts from the command's stdin.
func NewSimpleUI(cmd *cobra.Command, assumeYes bool) *SimpleUI {
	return &SimpleUI{
		cmd:       cmd,
		assumeYes: assumeYes,
		in:        bufio.NewReader(cmd.InOrStdin()),
	}
}

// ConfirmAction asks for a plain y/n acknowledgment.
func (s *SimpleUI) ConfirmAction(prompt string) (bool, error) {
	if s.assumeYes {
		return true, nil
	}

	s.cmd.Printf("%s [y/N] ", prompt)

	line, err := s.in.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes", nil
}

// ConfirmReplacement asks about one occurrence, showing a unified diff of
// the affected line.
func (s *SimpleUI) ConfirmReplacement(rep m.Replacement) (Decision, error) {
	if s.assumeYes {
		return DecisionAll, nil
	}

	s.cmd.Printf("%s:%d\n%s", rep.File, rep.Line, ReplacementDiff(rep))
	s.cmd.Printf("replace? [y]es [a]ll in file [q]uit: ")

	line, err := s.in.ReadString('\n')
	if err != nil {
		return DecisionQuit, fmt.Errorf("read replacement decision: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return DecisionReplace, nil
	case "a", "all", "!":
		return DecisionAll, nil
	default:
		return DecisionQuit, nil
	}
}

// Infof prints a progress line.
func (s *SimpleUI) Infof(format string, args ...any) {
	s.cmd.Printf(format+"\n", args...)
}

// DisplayTrace renders the executed steps of a rename operation.
func (s *SimpleUI) DisplayTrace(trace []m.TraceEvent) {
	if len(trace) == 0 {
		return
	}

	s.cmd.Print(renderTraceTable(trace))
}

// DisplayClassFiles renders the classified project files as a table.
func (s *SimpleUI) DisplayClassFiles(files []m.ClassifiedFile) {
	if len(files) == 0 {
		s.cmd.Println("no class files found")
		return
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"File", "Kind", "Symbol"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, f := range files {
		table.Append([]string{string(f.Path), string(f.Kind), string(f.Symbol)})
	}

	table.Render()
	s.cmd.Print(buf.String())
}

func renderTraceTable(trace []m.TraceEvent) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Step", "From", "To", "Note"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	for _, ev := range trace {
		table.Append([]string{string(ev.Op), string(ev.From), string(ev.To), ev.Note})
	}

	table.Render()

	return buf.String()
}

// ReplacementDiff renders a unified diff of the single affected line.
func ReplacementDiff(rep m.Replacement) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        []string{rep.LineText + "\n"},
		B:        []string{rep.NewText + "\n"},
		FromFile: string(rep.File),
		ToFile:   string(rep.File),
		Context:  0,
	})
	if err != nil {
		// difflib only fails on writer errors; a string writer has none.
		return fmt.Sprintf("- %s\n+ %s\n", rep.LineText, rep.NewText)
	}

	return diff
}
