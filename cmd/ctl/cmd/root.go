// cmd/ctl/cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"starauto/internal/app"
	"starauto/internal/config"
	"starauto/internal/infrastructure/migration"
	"starauto/internal/infrastructure/storage"
	"starauto/internal/utils/logger"
)

var (
	cfgFile  string
	cfg      *config.Config
	log      *slog.Logger
	stores   *storage.Stores
	services *app.Services
)

var rootCmd = &cobra.Command{
	Use:   "starauto-ctl",
	Short: "Star Auto - обслуживание хранилища",
	Long: `starauto-ctl работает с тем же хранилищем, что и сервер:
JSON-файлом и, если настроен DB_DRIVER, базой данных.

Команды заполняют демо-данными, переносят записи между JSON-файлом
и базой, создают администраторов и показывают каталог.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: closeApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
		}
	}
	cfg = config.MustLoad()
	log = logger.New(cfg.Env)

	var err error
	stores, err = storage.Open(cmd.Context(), cfg, migration.DefaultEngine, log)
	if err != nil {
		return fmt.Errorf("ошибка открытия хранилища: %w", err)
	}

	services = app.NewServices(stores.Factory, cfg.Auth.Secret, cfg.Auth.TokenTTL, log)
	return nil
}

func closeApp(_ *cobra.Command, _ []string) error {
	if stores == nil {
		return nil
	}
	return stores.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().String("json-db", "", "путь к JSON-файлу (JSON_DB_PATH)")
	rootCmd.PersistentFlags().String("driver", "", "драйвер базы: postgres, sqlite, none (DB_DRIVER)")
	rootCmd.PersistentFlags().String("database-uri", "", "адрес базы (DATABASE_URI)")

	_ = viper.BindPFlag("json_db_path", rootCmd.PersistentFlags().Lookup("json-db"))
	_ = viper.BindPFlag("db_driver", rootCmd.PersistentFlags().Lookup("driver"))
	_ = viper.BindPFlag("database_uri", rootCmd.PersistentFlags().Lookup("database-uri"))

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbPushCmd, dbPullCmd)
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(createAdminCmd)
	rootCmd.AddCommand(carsCmd)
	carsCmd.AddCommand(carsListCmd)
}
