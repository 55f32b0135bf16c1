package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/studyplay/internal/i18n"
	"github.com/balkashynov/studyplay/internal/models"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the economy settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	Args:  cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		printConfig(a)
	}),
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	Long: `Change economy settings. Values are validated before anything is saved.

Examples:
  studyplay config set --leisure-factor 0.5
  studyplay config set --interest-rate 0.2 --debt-limit 90
  studyplay config set --language es`,
	Args: cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		cfg := a.engine.Config()
		flags := cmd.Flags()

		if flags.Changed("leisure-factor") {
			cfg.LeisureFactor, _ = flags.GetFloat64("leisure-factor")
		}
		if flags.Changed("interest-rate") {
			cfg.LoanInterestRate, _ = flags.GetFloat64("interest-rate")
		}
		if flags.Changed("debt-limit") {
			cfg.MaxDebtLimit, _ = flags.GetFloat64("debt-limit")
		}

		if err := a.engine.UpdateConfig(cfg); err != nil {
			fmt.Println(a.tr.T(i18n.InvalidConfig, err))
			return
		}

		if flags.Changed("language") {
			lang, _ := flags.GetString("language")
			a.settings.Language = lang
			if err := a.settings.Save(a.settingsPath); err != nil {
				printError(fmt.Errorf("failed to save settings: %w", err))
				return
			}
			a.tr = i18n.New(a.settings.Language)
		}

		fmt.Println(a.tr.T(i18n.SettingsSaved))
		printConfig(a)
	}),
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default economy settings",
	Args:  cobra.NoArgs,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		a.engine.ResetConfig()
		fmt.Println(a.tr.T(i18n.SettingsReset))
		printConfig(a)
	}),
}

func init() {
	configSetCmd.Flags().Float64("leisure-factor", 0, fmt.Sprintf("Leisure minutes per study minute (%.1f - %.1f)", models.MinLeisureFactor, models.MaxLeisureFactor))
	configSetCmd.Flags().Float64("interest-rate", 0, fmt.Sprintf("Loan interest rate (%.1f - %.1f)", models.MinLoanInterestRate, models.MaxLoanInterestRate))
	configSetCmd.Flags().Float64("debt-limit", 0, fmt.Sprintf("Maximum debt in study minutes (%d - %d)", models.MinDebtLimit, models.MaxDebtLimit))
	configSetCmd.Flags().String("language", "", "Interface language: en, es, fr (empty = from $LANG)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configResetCmd)
}

func printConfig(a *app) {
	cfg := a.engine.Config()
	fmt.Printf("%s: %g\n", a.tr.T(i18n.LeisureFactor), cfg.LeisureFactor)
	fmt.Printf("%s: %.0f%%\n", a.tr.T(i18n.LoanInterestRate), cfg.LoanInterestRate*100)
	fmt.Printf("%s: %.0f\n", a.tr.T(i18n.MaxDebtLimit), cfg.MaxDebtLimit)
	fmt.Printf("%s: %s\n", a.tr.T(i18n.Language), a.tr.Language())
}
