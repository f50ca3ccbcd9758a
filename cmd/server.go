/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/zengarden/apiserver/config"
	"github.com/zengarden/apiserver/internal/server"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the ZenGarden backend server",
	Long: `Starts the ZenGarden backend server. Usage:

	zengarden server
`,
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		cfg := config.LoadConfig()

		srv, err := server.New(cmd.Context(), cfg, log)
		if err != nil {
			log.WithError(err).Fatal("failed to start server")
		}
		if err := srv.Start(); err != nil {
			log.WithError(err).Fatal("server error")
		}
	},
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout
	return log
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
