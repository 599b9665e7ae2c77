// @title Perros API
// @version 1.0
// @description CRUD de perros con listado filtrado y paginado.
// @BasePath /
package main

import (
	"fmt"
	"os"

	"perros-api/internal/platform/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version se sobreescribe en build: -ldflags "-X main.version=1.2.3"
var version = "dev"

var (
	flagEnv     string
	flagPort    int
	flagEnvFile string

	// v se arma en PersistentPreRunE; los subcomandos leen de acá.
	v *viper.Viper
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "perros-api",
	Short:         "API HTTP de perros",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		v, err = config.NewViper(flagEnvFile)
		if err != nil {
			return err
		}
		if err := v.BindPFlag(config.KeyEnv, cmd.Flags().Lookup("env")); err != nil {
			return err
		}
		return v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))
	},
	// Sin subcomando: serve.
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEnv, "env", "", "entorno: local | prod (default: APP_ENV o local)")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", 0, "puerto HTTP (default: PORT o 3000)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "archivo .env opcional")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(healthcheckCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Imprime la versión",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "perros-api", version)
	},
}
