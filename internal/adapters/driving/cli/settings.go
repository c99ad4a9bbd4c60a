package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shellit/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage calculator settings",
	Long: `View and configure calculator precision, angle unit, echo and history.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single calculator setting.

Keys:
  precision      significant digits, -1 for shortest exact form (max 64)
  angle_unit     radians or degrees
  echo_input     true or false
  history_limit  number of calculations kept, 0 disables history`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE:  runSettingsReset,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Calculator]")
	cmd.Printf("  Precision: %s\n", describePrecision(settings.Precision))
	cmd.Printf("  Angle unit: %s\n", settings.AngleUnit.Description())
	cmd.Printf("  Echo input: %s\n", yesNo(settings.EchoInput))
	cmd.Println()
	cmd.Println("[History]")
	if settings.HistoryLimit == 0 {
		cmd.Println("  Enabled: no")
	} else {
		cmd.Println("  Enabled: yes")
		cmd.Printf("  Limit: %d\n", settings.HistoryLimit)
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if err := applySetting(&settings, args[0], args[1]); err != nil {
		return err
	}
	if err := saveSettings(settings); err != nil {
		return err
	}

	cmd.Printf("Set %s to %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := saveSettings(settingsService.GetDefaults()); err != nil {
		return err
	}

	cmd.Println("Settings restored to defaults.")
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("shellit Settings Wizard")
	cmd.Println("=======================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Angle unit
	cmd.Println("Step 1: Select Angle Unit")
	cmd.Println("-------------------------")
	units := domain.AllAngleUnits()
	current := 1
	for i, unit := range units {
		cmd.Printf("  %d. %s\n", i+1, unit.Description())
		if unit == settings.AngleUnit {
			current = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", current)
	settings.AngleUnit = units[parseChoice(readLine(reader), len(units), current)-1]
	cmd.Println()

	// Step 2: Precision
	cmd.Println("Step 2: Precision")
	cmd.Println("-----------------")
	cmd.Printf("Significant digits, -1 for shortest [%d]: ", settings.Precision)
	if input := readLine(reader); input != "" {
		if err := applySetting(&settings, "precision", input); err != nil {
			return err
		}
	}
	cmd.Println()

	// Step 3: Echo
	cmd.Println("Step 3: Echo Input")
	cmd.Println("------------------")
	cmd.Printf("Show the expression with the result? (y/n) [%s]: ", yesNo(settings.EchoInput))
	settings.EchoInput = parseYesNo(readLine(reader), settings.EchoInput)
	cmd.Println()

	// Step 4: History
	cmd.Println("Step 4: History")
	cmd.Println("---------------")
	cmd.Printf("Calculations to keep, 0 to disable [%d]: ", settings.HistoryLimit)
	if input := readLine(reader); input != "" {
		if err := applySetting(&settings, "history_limit", input); err != nil {
			return err
		}
	}
	cmd.Println()

	if err := saveSettings(settings); err != nil {
		return err
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Println("All settings are valid and saved.")
	return nil
}

// applySetting parses value into the field named by key.
func applySetting(settings *domain.CalculatorSettings, key, value string) error {
	switch key {
	case "precision":
		n, err := strconv.Atoi(value)
		if err != nil || n < domain.ShortestPrecision || n > domain.MaxPrecision {
			return fmt.Errorf("precision must be between %d and %d: %w",
				domain.ShortestPrecision, domain.MaxPrecision, domain.ErrInvalidInput)
		}
		settings.Precision = n
	case "angle_unit":
		unit := domain.AngleUnit(strings.ToLower(value))
		if !unit.IsValid() {
			return fmt.Errorf("angle_unit must be radians or degrees: %w", domain.ErrInvalidInput)
		}
		settings.AngleUnit = unit
	case "echo_input":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("echo_input must be true or false: %w", domain.ErrInvalidInput)
		}
		settings.EchoInput = b
	case "history_limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("history_limit must be zero or more: %w", domain.ErrInvalidInput)
		}
		settings.HistoryLimit = n
	default:
		return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
	return nil
}

// saveSettings persists settings and applies them to the live calculator.
func saveSettings(settings domain.CalculatorSettings) error {
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	if calculator != nil {
		if err := calculator.Configure(settings); err != nil {
			return fmt.Errorf("failed to apply settings: %w", err)
		}
	}
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func parseYesNo(input string, defaultVal bool) bool {
	switch strings.ToLower(input) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultVal
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func describePrecision(p int) string {
	if p == domain.ShortestPrecision {
		return "shortest"
	}
	return fmt.Sprintf("%d digits", p)
}
