// Package shell implements the interactive prompt loop: it collects one
// magnet specification per pass, shows the estimated pull force, and
// offers another round until the user declines.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"magforce/cmd/magforce/ui"
	"magforce/internal/grades"
	"magforce/internal/pull"
)

// Shell drives one interactive estimation session. It reads newline
// terminated input from in and writes prompts and results to out, so
// tests can script complete sessions.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	styles ui.Styles
	logger *zap.Logger
}

// New creates a Shell. A nil logger is replaced with a no-op logger; the
// interactive path normally runs without one since it owns the terminal.
func New(in io.Reader, out io.Writer, styles ui.Styles, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
		logger: logger,
	}
}

// Run loops until the user declines another calculation or input ends.
// End of input at any prompt is a clean exit, not an error; all invalid
// input is recovered in-loop by re-prompting.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, s.styles.Title.Render("Magnet pull-force estimator"))
	fmt.Fprintln(s.out, s.styles.Subtitle.Render("Cylindrical neodymium magnets in contact with flat steel."))

	for {
		spec, err := s.collectSpec()
		if err != nil {
			return ignoreEOF(err)
		}

		result, err := pull.Estimate(spec)
		if err != nil {
			// The grade was validated during collection, so this is a
			// programming error, not user input.
			return err
		}
		s.logger.Debug("estimated pull force",
			zap.Float64("diameter_mm", spec.DiameterMM),
			zap.Float64("height_mm", spec.HeightMM),
			zap.String("grade", spec.Grade),
			zap.Float64("force_n", result.ForceN),
		)

		fmt.Fprintln(s.out)
		fmt.Fprint(s.out, FormatResult(s.styles, spec, result))

		again, err := s.askRepeat()
		if err != nil {
			return ignoreEOF(err)
		}
		if !again {
			fmt.Fprintln(s.out, s.styles.Muted.Render("Goodbye."))
			return nil
		}
		fmt.Fprintln(s.out)
	}
}

// collectSpec gathers one validated magnet specification: the dimension
// pair first, then the grade.
func (s *Shell) collectSpec() (pull.Spec, error) {
	diameter, height, err := s.collectDimensions()
	if err != nil {
		return pull.Spec{}, err
	}
	grade, err := s.collectGrade()
	if err != nil {
		return pull.Spec{}, err
	}
	return pull.Spec{DiameterMM: diameter, HeightMM: height, Grade: grade}, nil
}

// collectDimensions reads the diameter/height pair. Both lines are read
// before validation; any failure restarts the whole pair rather than the
// offending field.
func (s *Shell) collectDimensions() (float64, float64, error) {
	for {
		rawDiameter, err := s.ask("Diameter (mm): ")
		if err != nil {
			return 0, 0, err
		}
		rawHeight, err := s.ask("Height (mm): ")
		if err != nil {
			return 0, 0, err
		}

		diameter, errD := strconv.ParseFloat(rawDiameter, 64)
		height, errH := strconv.ParseFloat(rawHeight, 64)
		if errD != nil || errH != nil {
			s.errorf("Diameter and height must be numbers. Let's try again.")
			continue
		}
		if diameter <= 0 || height <= 0 {
			s.errorf("Diameter and height must be greater than zero. Let's try again.")
			continue
		}
		return diameter, height, nil
	}
}

// collectGrade prints the grade table once, then re-prompts until a known
// grade is entered. Unlike the dimension pair, an invalid grade retries
// the grade field only.
func (s *Shell) collectGrade() (string, error) {
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, FormatGradeTable(s.styles))

	for {
		raw, err := s.ask("Grade: ")
		if err != nil {
			return "", err
		}
		grade := strings.ToUpper(raw)
		if _, err := grades.Lookup(grade); err == nil {
			return grade, nil
		}
		s.errorf("Unknown grade %q. Pick one from the table above.", grade)
	}
}

// askRepeat reads the yes/no answer. Only "y" (case-insensitive)
// continues; any other answer ends the session.
func (s *Shell) askRepeat() (bool, error) {
	raw, err := s.ask("Calculate another magnet? [y/N]: ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(raw, "y"), nil
}

// ask prints a prompt and reads one trimmed line. A final line without a
// trailing newline still counts as input.
func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, s.styles.Prompt.Render(prompt))
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) errorf(format string, args ...any) {
	fmt.Fprintln(s.out, s.styles.Error.Render(fmt.Sprintf(format, args...)))
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// FormatResult renders one estimate labeled with the magnet it was
// computed for, forces rounded to two decimals. Shared by the shell and
// the one-shot estimate command.
func FormatResult(styles ui.Styles, spec pull.Spec, result pull.Result) string {
	var sb strings.Builder
	sb.WriteString(styles.Body.Render(fmt.Sprintf(
		"Magnet: %.2f mm diameter × %.2f mm height, grade %s",
		spec.DiameterMM, spec.HeightMM, spec.Grade)))
	sb.WriteString("\n")
	sb.WriteString(styles.Result.Render(fmt.Sprintf(
		"Estimated pull force: %.2f kg (%.2f N)",
		result.ForceKg, result.ForceN)))
	sb.WriteString("\n")
	return sb.String()
}

// FormatGradeTable renders the full grade table in ascending label order.
func FormatGradeTable(styles ui.Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Bold.Render("Known grades (Br in tesla):"))
	sb.WriteString("\n")
	for _, label := range grades.List() {
		br, err := grades.Lookup(label)
		if err != nil {
			continue
		}
		sb.WriteString(styles.Body.Render(fmt.Sprintf("  %-4s %.2f T", label, br)))
		sb.WriteString("\n")
	}
	return sb.String()
}
