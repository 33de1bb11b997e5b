package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

func NewInteractiveCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Menu-driven session over the data directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := &session{
				deps:    deps,
				scanner: bufio.NewScanner(deps.Input),
			}
			return session.run(cmd)
		},
	}
}

type session struct {
	deps    Deps
	scanner *bufio.Scanner
}

// run loops until EOF or an explicit quit. Request failures print and return
// to the menu; nothing here is fatal to the process. A read error on the
// input (as opposed to plain EOF) is returned once the loop exits.
func (s *session) run(cmd *cobra.Command) error {
	for {
		fmt.Fprintf(s.deps.Output, "\n1. Visualize transactions\n2. Analyze swap chains\nq. Quit\n")
		choice, ok := s.prompt("Select an action: ")
		if !ok {
			return s.scanner.Err()
		}
		if choice == "q" || choice == "quit" {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = s.visualize(cmd)
		case "2":
			err = s.analyzeSwaps(cmd)
		default:
			err = fmt.Errorf("invalid selection %q", choice)
		}
		if err != nil {
			fmt.Fprintf(s.deps.Output, "Error: %v\n", err)
		}
	}
}

func (s *session) visualize(cmd *cobra.Command) error {
	dir, file, err := s.pickCSV()
	if err != nil {
		return err
	}

	rawGranularity, ok := s.prompt("Granularity [d]aily/[w]eekly/[m]onthly (default daily): ")
	if !ok {
		return nil
	}
	rawMode, ok := s.prompt("Aggregation mode sum/mean/max (default sum): ")
	if !ok {
		return nil
	}
	granularity, mode, err := granularityAndMode(rawGranularity, rawMode)
	if err != nil {
		return err
	}
	ticker, ok := s.prompt("Ticker filter (empty for all): ")
	if !ok {
		return nil
	}

	return runAnalyze(cmd.Context(), s.deps, domain.AnalysisRequest{
		Dir:         dir,
		File:        file,
		Granularity: granularity,
		Mode:        mode,
		Ticker:      ticker,
	}, s.deps.Profile.ChartsDir)
}

func (s *session) analyzeSwaps(cmd *cobra.Command) error {
	dir, file, err := s.pickCSV()
	if err != nil {
		return err
	}
	answer, ok := s.prompt("Chart the execution dates? (yes/no): ")
	if !ok {
		return nil
	}
	renderChart := strings.EqualFold(answer, "yes") || strings.EqualFold(answer, "y")
	return runSwaps(cmd.Context(), s.deps, dir, file, s.deps.Profile.ChartsDir, renderChart)
}

// pickCSV walks the original two-step menu: subdirectory of the data dir,
// then a CSV file inside it.
func (s *session) pickCSV() (dir, file string, err error) {
	subdirs, err := listSubdirs(s.deps.Profile.DataDir)
	if err != nil {
		return "", "", err
	}
	if len(subdirs) == 0 {
		return "", "", fmt.Errorf("no subdirectories found in %s", s.deps.Profile.DataDir)
	}
	subdir, err := s.pickFrom("Available subdirectories:", subdirs)
	if err != nil {
		return "", "", err
	}

	dir = filepath.Join(s.deps.Profile.DataDir, subdir)
	files, err := listCSVs(dir)
	if err != nil {
		return "", "", err
	}
	if len(files) == 0 {
		return "", "", fmt.Errorf("no CSV files found in %s", dir)
	}
	file, err = s.pickFrom(fmt.Sprintf("Available CSV files in %q:", subdir), files)
	if err != nil {
		return "", "", err
	}
	return dir, file, nil
}

func (s *session) pickFrom(header string, items []string) (string, error) {
	fmt.Fprintln(s.deps.Output, header)
	for i, item := range items {
		fmt.Fprintf(s.deps.Output, "%d. %s\n", i+1, item)
	}
	raw, ok := s.prompt("Select by number: ")
	if !ok {
		return "", fmt.Errorf("input closed")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > len(items) {
		return "", fmt.Errorf("invalid selection %q", raw)
	}
	return items[n-1], nil
}

// prompt returns ok=false on EOF.
func (s *session) prompt(label string) (string, bool) {
	fmt.Fprint(s.deps.Output, label)
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

func listSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}
	var subdirs []string
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, e.Name())
		}
	}
	sort.Strings(subdirs)
	return subdirs, nil
}

func listCSVs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}
