package commands

import (
	"github.com/spf13/cobra"

	"github.com/smagulov/flightlog/internal/bot"
	"github.com/smagulov/flightlog/internal/db"
	"github.com/smagulov/flightlog/internal/session"
	"github.com/smagulov/flightlog/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot in the terminal",
	Long: `Open an interactive console chat that drives the same dialogue and
menu actions as the Telegram bot. Useful for trying the bot without a
token; exported workbooks are written to the working directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		userID, _ := cmd.Flags().GetInt64("user")

		store, err := db.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		router := bot.NewRouter(store, session.NewStore())
		return tui.RunChatTUI(userID, router)
	},
}

func init() {
	chatCmd.Flags().String("db", "", "Path to the SQLite database (default ~/.flightlog/flightlog.db)")
	chatCmd.Flags().Int64("user", 1, "User id to act as")
}
