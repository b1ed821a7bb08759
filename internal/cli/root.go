package cli

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/roi-collector-api/internal/app"
	"github.com/vfg2006/roi-collector-api/internal/config"
	"github.com/vfg2006/roi-collector-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	logLevel  string
	appHandle *app.App
)

var rootCmd = &cobra.Command{
	Use:           "roictl",
	Short:         "Manutenção da coleta de ROI",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if appHandle != nil {
			return nil
		}

		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}

		if logLevel != "" {
			cfg.App.LogLevel = logLevel
		}
		level, err := logrus.ParseLevel(cfg.App.LogLevel)
		if err != nil {
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)
		// a saída padrão fica reservada para o JSON dos comandos
		logrus.SetOutput(os.Stderr)

		appHandle, err = app.New(cmd.Context(), cfg)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appHandle != nil {
			appHandle.Close()
			appHandle = nil
		}
	},
}

// Execute roda o comando informado na linha de comando
func Execute() {
	utils.UseNumericDecimalJSON()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Sobrescreve o LOG_LEVEL da configuração")

	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(mappingCmd)
	rootCmd.AddCommand(migrateCmd)
}

func getApp() *app.App {
	if appHandle == nil {
		panic("aplicação não inicializada; PersistentPreRunE não executado")
	}
	return appHandle
}

func printJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
