package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	appConfig "helpdesk/internal/infrastructure/config"
	"helpdesk/internal/shared/utils"
)

var (
	env        string
	configPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  `Print the configuration after defaults, config file and environment are merged. Secrets are masked.`,
		RunE:  runShow,
	})

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out, err := yaml.Marshal(Masked(cfg))
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// Masked returns a copy of cfg with passwords hidden.
func Masked(cfg *appConfig.Config) *appConfig.Config {
	masked := *cfg
	masked.Server.AllowedOrigins = append([]string(nil), cfg.Server.AllowedOrigins...)
	masked.Database.Password = utils.MaskSecret(cfg.Database.Password)
	masked.Redis.Password = utils.MaskSecret(cfg.Redis.Password)
	masked.Redis.URL = utils.MaskURLPassword(cfg.Redis.URL)
	return &masked
}
