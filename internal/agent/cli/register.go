package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере todo-backend
// с использованием имени, email и пароля. Для выполнения команды необходимо
// указать обязательные флаги --name, --email и --password.
//
// Пример использования:
//
//	todo register --name Ivan --email test@example.com --password StrongPass123
//
// В случае успешной регистрации пользователю выводится id созданного
// пользователя и сообщение сервера.
func NewRegisterCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  todo register --name Ivan --email test@example.com --password StrongPass123
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := NewAPIClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Register(name, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered user %s (%s)\n", resp.Items.Data.ID, resp.Items.Data.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "name for registration")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}
