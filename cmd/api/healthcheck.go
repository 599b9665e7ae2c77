package main

import (
	"fmt"
	"time"

	"perros-api/internal/platform/config"
	"perros-api/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

var flagHealthURL string

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Consulta /health de una instancia; sale con 1 si no responde ok",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base := flagHealthURL
		if base == "" {
			base = fmt.Sprintf("http://localhost:%d", v.GetInt(config.KeyPort))
		}
		return checkHealth(cmd, base)
	},
}

func init() {
	healthcheckCmd.Flags().StringVar(&flagHealthURL, "url", "", "URL base de la instancia (default: http://localhost:$PORT)")
}

type healthBody struct {
	Status string `json:"status"`
	Env    string `json:"env"`
}

func checkHealth(cmd *cobra.Command, baseURL string) error {
	c, err := httpclient.New(baseURL, 3*time.Second)
	if err != nil {
		return err
	}

	var h healthBody
	if err := c.GetJSON(cmd.Context(), "/health", &h); err != nil {
		return fmt.Errorf("healthcheck: %w", err)
	}
	if h.Status != "ok" {
		return fmt.Errorf("healthcheck: status %q", h.Status)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok (env=%s)\n", h.Env)
	return nil
}
