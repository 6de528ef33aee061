package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// TodoList создаёт CLI-команду для вывода всех задач текущего пользователя.
//
// Команда запрашивает у сервера полный список задач и выводит их в виде
// таблицы: id, статус, заголовок и описание. Сервер возвращает только
// задачи текущего пользователя (по access токену).
//
// Пример использования:
//
//	todo list
//
// Требования:
//   - пользователь должен быть залогинен (access token сохранён локально).
func TodoList(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Показать задачи пользователя",
		Long: `Выводит все задачи текущего пользователя.

Пример:
  todo list
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.AccessToken == "" {
				return fmt.Errorf("no access_token, run: todo login")
			}

			c := NewAPIClient(app.ServerURL)
			resp, err := c.ListTodos(app.Creds.AccessToken)
			if err != nil {
				return err
			}

			if len(resp.Items.Data) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no todos")
				return nil
			}

			for _, t := range resp.Items.Data {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s]  %s", t.ID, t.Status, t.Title)
				if t.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), " — %s", t.Description)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
