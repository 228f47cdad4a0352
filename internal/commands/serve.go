package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/smagulov/flightlog/internal/bot"
	"github.com/smagulov/flightlog/internal/db"
	"github.com/smagulov/flightlog/internal/session"
	"github.com/smagulov/flightlog/internal/telegram"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram bot",
	Long: `Run the bot against the Telegram API using long polling.

Reads TELEGRAM_TOKEN from the environment (a .env file is honoured) and
stores data in ~/.flightlog/flightlog.db unless FLIGHTLOG_DB or --db
points elsewhere.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Load environment variables
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: no .env file loaded: %v", err)
		}
		token := os.Getenv("TELEGRAM_TOKEN")
		if token == "" {
			return fmt.Errorf("TELEGRAM_TOKEN is not set")
		}

		dbPath, _ := cmd.Flags().GetString("db")
		store, err := db.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		router := bot.NewRouter(store, session.NewStore())
		tg, err := telegram.New(token, router)
		if err != nil {
			return err
		}
		return tg.Run()
	},
}

func init() {
	serveCmd.Flags().String("db", "", "Path to the SQLite database (default ~/.flightlog/flightlog.db)")
}
