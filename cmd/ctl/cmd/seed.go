package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"starauto/internal/docstore"
	"starauto/internal/seed"
)

var seedReset bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Заполнить хранилище демо-данными",
	Long: `Создает администратора, клиента и шесть автомобилей в текущем режиме
хранилища. С флагом --reset сначала очищает пользователей и автомобили.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		s := seed.New(services.Cars, services.Users, log)

		if seedReset {
			f := stores.Factory
			if err := s.Reset(ctx, f.MustModel(docstore.Users), f.MustModel(docstore.Cars)); err != nil {
				return err
			}
		}

		res, err := s.Run(ctx)
		if err != nil {
			return fmt.Errorf("ошибка заполнения: %w", err)
		}

		fmt.Printf("✅ Создано: пользователей %d, автомобилей %d (режим %s)\n",
			res.Users, res.Cars, stores.Factory.Mode())
		fmt.Printf("   Администратор: %s / %s\n", seed.Admin.Email, seed.Admin.Password)
		fmt.Printf("   Клиент:        %s / %s\n", seed.Client.Email, seed.Client.Password)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "очистить пользователей и автомобили перед заполнением")
}
