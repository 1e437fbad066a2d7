// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/conference-scheduler/internal/db"
	"github.com/jonathan/conference-scheduler/internal/types"
	"github.com/jonathan/conference-scheduler/internal/validation"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// timeLayout formats run timestamps
const timeLayout = "2006-01-02 15:04:05"


// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if utf8.RuneCountInString(line) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProblem outputs a short description of the problem instance.
func (p *Printer) PrintProblem(problem *types.Problem) {
	if problem == nil {
		return
	}

	var sb strings.Builder
	if problem.Name != "" {
		sb.WriteString(fmt.Sprintf("Name:     %s\n", problem.Name))
	}
	sb.WriteString(fmt.Sprintf("Events:   %d\n", problem.Shape.Events))
	sb.WriteString(fmt.Sprintf("Slots:    %d\n", problem.Shape.Slots))
	sb.WriteString(fmt.Sprintf("Sessions: %d\n", len(problem.Sessions)))

	grouped := 0
	for _, session := range problem.Sessions {
		if len(session.Slots) > 1 {
			grouped++
		}
	}
	sb.WriteString(fmt.Sprintf("Multi-slot sessions: %d", grouped))

	p.printBox("PROBLEM", sb.String())
}

// PrintRules lists the constraint names in evaluation order.
func (p *Printer) PrintRules(rules []string) {
	var sb strings.Builder
	for i, rule := range rules {
		sb.WriteString(fmt.Sprintf("%d. %s", i+1, rule))
		if i < len(rules)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("CONSTRAINTS", sb.String())
}

// PrintViolations outputs any constraint violations found.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations *types.Violations) {
	if violations == nil || len(violations.Violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO VIOLATIONS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations.Violations)))

	counts := violations.CountByRule()
	rules := make([]string, 0, len(counts))
	for rule := range counts {
		rules = append(rules, rule)
	}
	sort.Strings(rules)
	for _, rule := range rules {
		sb.WriteString(fmt.Sprintf("  %-40s %d\n", rule, counts[rule]))
	}
	sb.WriteString("\n")

	for i, v := range violations.Violations {
		sb.WriteString(fmt.Sprintf("⚠ %s", v.String()))
		if i < len(violations.Violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CONSTRAINT VIOLATIONS", sb.String())
}

// PrintBatch outputs the penalty of every candidate, best first.
func (p *Printer) PrintBatch(results []validation.BatchResult) {
	if len(results) == 0 {
		p.printBox("BATCH RESULTS", "No candidates")
		return
	}

	ranked := make([]validation.BatchResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := ranked[i].Penalty(), ranked[j].Penalty()
		if (pi < 0) != (pj < 0) {
			return pj < 0
		}
		return pi < pj
	})

	valid := 0
	for _, r := range results {
		if r.Report != nil && r.Report.Valid {
			valid++
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates: %d  Valid: %d\n\n", len(results), valid))
	for i, r := range ranked {
		if r.Report == nil {
			sb.WriteString(fmt.Sprintf("#%d  malformed: %s", r.Index, r.Error))
		} else {
			sb.WriteString(fmt.Sprintf("#%d  violations: %d", r.Index, r.Penalty()))
		}
		if i < len(ranked)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("BATCH RESULTS", sb.String())
}

// PrintRuns lists stored validation runs, newest first as given.
func (p *Printer) PrintRuns(runs []db.Run) {
	if len(runs) == 0 {
		p.printBox("VALIDATION RUNS", "No runs recorded")
		return
	}

	var sb strings.Builder
	for i, run := range runs {
		sb.WriteString(run.ID.String())
		sb.WriteString(fmt.Sprintf("\n  %s  %s  %s  %s", runLabel(run), run.Status, outcome(run), run.CreatedAt.Format(timeLayout)))
		if i < len(runs)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("VALIDATION RUNS", sb.String())
}

// PrintRun outputs one stored run followed by its violations.
func (p *Printer) PrintRun(run *db.Run, violations []types.Violation) {
	if run == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:      %s\n", run.ID))
	sb.WriteString(fmt.Sprintf("Problem: %s\n", runLabel(*run)))
	sb.WriteString(fmt.Sprintf("Shape:   %d events x %d slots\n", run.Events, run.Slots))
	sb.WriteString(fmt.Sprintf("Rules:   %s\n", strings.Join(run.Rules, ", ")))
	sb.WriteString(fmt.Sprintf("Status:  %s\n", run.Status))
	sb.WriteString(fmt.Sprintf("Outcome: %s\n", outcome(*run)))
	sb.WriteString(fmt.Sprintf("Started: %s", run.CreatedAt.Format(timeLayout)))
	if run.CompletedAt != nil {
		sb.WriteString(fmt.Sprintf("\nDone:    %s", run.CompletedAt.Format(timeLayout)))
	}
	p.printBox("VALIDATION RUN", sb.String())

	if run.Status == db.RunStatusCompleted {
		p.PrintViolations(&types.Violations{Violations: violations})
	}
}

func runLabel(run db.Run) string {
	if run.Problem == "" {
		return "(unnamed)"
	}
	return run.Problem
}

func outcome(run db.Run) string {
	switch {
	case run.Valid == nil:
		return "pending"
	case *run.Valid:
		return "valid"
	default:
		return fmt.Sprintf("%d violation(s)", run.ViolationCount)
	}
}
