package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// TodoDelete создаёт CLI-команду для удаления задачи.
//
// Команда удаляет задачу по ID на сервере. Сервер отвечает успехом
// даже если задачи с таким ID уже нет (идемпотентное удаление).
//
// Пример использования:
//
//	todo delete 7a0a4a6a-a7bf-42c0-8cdf-2be8583d180e
func TodoDelete(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить задачу",
		Long: `Удаляет задачу по ID на сервере.

Пример:
  todo delete <uuid>
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: todo login")
			}
			id := args[0]

			c := NewAPIClient(app.ServerURL)
			resp, err := c.DeleteTodo(id, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Items.Message)
			return nil
		},
	}

	return cmd
}
