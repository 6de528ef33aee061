package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// TodoUpdate создаёт CLI-команду для смены статуса задачи.
//
// Команда обновляет статус задачи по ID на сервере. Обновляется только
// поле status; заголовок и описание не меняются.
//
// Обязательный флаг:
//
//	--status — новый статус задачи (active или inactive)
//
// Пример использования:
//
//	todo update 7a0a4a6a-a7bf-42c0-8cdf-2be8583d180e --status inactive
//
// В случае успеха выводит обновлённую задачу и сообщение сервера.
func TodoUpdate(app *App) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Сменить статус задачи",
		Long: `Обновляет статус задачи по ID на сервере.

Статус принимает значения active или inactive.

Пример:
  todo update <uuid> --status inactive
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: todo login")
			}
			id := args[0]

			c := NewAPIClient(app.ServerURL)
			resp, err := c.UpdateTodo(id, status, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			t := resp.Items.Data
			fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s]  %s\n", t.ID, t.Status, t.Title)
			fmt.Fprintln(cmd.OutOrStdout(), resp.Items.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "new todo status (active|inactive)")
	cmd.MarkFlagRequired("status")

	return cmd
}
