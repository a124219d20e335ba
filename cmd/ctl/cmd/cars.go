package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"starauto/internal/domain/car"
)

var listQuery car.Query

var carsCmd = &cobra.Command{
	Use:   "cars",
	Short: "Каталог автомобилей",
}

var carsListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "Список автомобилей",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cars, err := services.Cars.List(cmd.Context(), listQuery)
		if err != nil {
			return fmt.Errorf("ошибка получения каталога: %w", err)
		}
		return printCars(cmd.OutOrStdout(), cars)
	},
}

func printCars(out io.Writer, cars []car.Car) error {
	if len(cars) == 0 {
		fmt.Fprintln(out, "Автомобили не найдены")
		return nil
	}

	header := color.New(color.Bold)
	available := color.New(color.FgGreen)
	sold := color.New(color.FgRed)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header.Sprint("ID\tМАРКА\tМОДЕЛЬ\tГОД\tЦЕНА\tКМ\tТОПЛИВО\tСТАТУС"))
	for _, c := range cars {
		status := available.Sprint("в наличии")
		if !c.Disponibilite {
			status = sold.Sprint("продан")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\t%d\t%s\t%s\n",
			c.ID, c.Marque, c.Modele, c.Annee, c.Prix, c.Kilometrage, c.Carburant, status)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nВсего: %d\n", len(cars))
	return nil
}

func init() {
	carsListCmd.Flags().StringVar(&listQuery.Marque, "marque", "", "фильтр по марке")
	carsListCmd.Flags().IntVar(&listQuery.Annee, "annee", 0, "год выпуска")
	carsListCmd.Flags().StringVar(&listQuery.Search, "search", "", "поиск по марке и модели")
	carsListCmd.Flags().StringVar(&listQuery.Sort, "sort", "", "price-asc, price-desc, year-asc, year-desc")
}
