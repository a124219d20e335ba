package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"starauto/internal/domain/user"
)

var (
	adminEmail    string
	adminUsername string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Управление пользователями",
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Создать администратора",
	Long: `Создает учетную запись с ролью ADMIN. Пароль запрашивается в терминале;
если stdin не терминал, читается первая строка stdin.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		password, err := readPassword(os.Stdin)
		if err != nil {
			return err
		}

		u, err := services.Users.Provision(cmd.Context(), user.RegisterInput{
			Username: adminUsername,
			Email:    adminEmail,
			Password: password,
		}, user.RoleAdmin)
		if err != nil {
			return fmt.Errorf("ошибка создания администратора: %w", err)
		}

		fmt.Printf("✓ Администратор %s создан (id %s)\n", u.Email, u.ID)
		return nil
	},
}

func readPassword(in *os.File) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return readLine(in)
	}

	fmt.Print("Введите пароль: ")
	password, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	fmt.Println()

	fmt.Print("Повторите пароль: ")
	confirm, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	fmt.Println()

	if string(password) != string(confirm) {
		return "", fmt.Errorf("пароли не совпадают")
	}
	return string(password), nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("ошибка чтения пароля: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", fmt.Errorf("пустой пароль")
	}
	return line, nil
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "email администратора")
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "admin", "имя пользователя")
	_ = createAdminCmd.MarkFlagRequired("email")
}
