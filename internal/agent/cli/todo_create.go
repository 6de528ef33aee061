package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// TodoCreate создаёт CLI-команду для создания новой задачи на сервере.
//
// Команда отправляет на сервер заголовок, статус и описание задачи.
// Задача привязывается к текущему пользователю (по access токену).
//
// Обязательные флаги:
//
//	--title   — заголовок задачи
//	--status  — статус задачи (active или inactive)
//
// Необязательные флаги:
//
//	--description — описание задачи
//
// Примеры использования:
//
//	todo add --title "купить хлеб" --status active
//	todo add --title "отчёт" --status active --description "до пятницы"
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально).
func TodoCreate(app *App) *cobra.Command {
	var (
		title       string
		status      string
		description string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Создать новую задачу",
		Long: `Создаёт новую задачу на сервере.

Статус принимает значения active или inactive.

Примеры:
  todo add --title "купить хлеб" --status active
  todo add --title "отчёт" --status active --description "до пятницы"
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: todo login")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.CreateTodo(title, status, description, app.Creds.AccessToken)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Items.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "todo title")
	cmd.Flags().StringVar(&status, "status", "", "todo status (active|inactive)")
	cmd.Flags().StringVar(&description, "description", "", "optional todo description")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("status")

	return cmd
}
