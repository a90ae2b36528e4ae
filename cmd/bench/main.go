package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"rcpspInv/internal/bench"
	"rcpspInv/internal/config"
	"rcpspInv/internal/logger"
)

// CLI флаги; значения из файла конфигурации можно переопределить ими
var (
	cfgPath   string
	instances string
	samples   int
	baseSeed  int64
	out       string
)

var rootCmd = &cobra.Command{
	Use:   "rcpsp-bench",
	Short: "Оценка случайных расписаний для RCPSP с инвентарными ресурсами",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "путь к конфигурационному файлу (yaml/json)")
	rootCmd.Flags().StringVar(&instances, "instances", "", "список файлов экземпляров задачи (через запятую)")
	rootCmd.Flags().IntVar(&samples, "samples", 0, "количество случайных расписаний на экземпляр")
	rootCmd.Flags().Int64Var(&baseSeed, "seed", 0, "базовый сид для генерации расписаний")
	rootCmd.Flags().StringVar(&out, "out", "", "путь к выходному CSV-файлу")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{}
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	} else {
		cfg.Bench.SetDefaults()
		cfg.Logging.SetDefaults()
	}

	if instances != "" {
		cfg.Bench.Instances = splitCSV(instances)
	}
	if samples > 0 {
		cfg.Bench.Samples = samples
	}
	if baseSeed != 0 {
		cfg.Bench.BaseSeed = baseSeed
	}
	if out != "" {
		cfg.Bench.Out = out
	}
	if err := cfg.Bench.Validate(); err != nil {
		return fmt.Errorf("конфликт в конфигурации: %w", err)
	}

	log := logger.NewZerolog("bench", logger.Options{
		Level:   cfg.Logging.Level,
		Console: cfg.Logging.Console,
	})

	runner := bench.Runner{
		Samples: cfg.Bench.Samples,
		BaseDir: cfg.Bench.BaseDir,
		Log:     log,
	}

	var records []bench.Record
	for _, c := range makeCases(cfg.Bench) {
		fmt.Printf("Запущена оценка %s (количество расписаний=%d)...\n", c.Name, runner.Samples)

		rec, err := runner.RunCase(cmd.Context(), c)
		if err != nil {
			return err
		}
		records = append(records, rec)

		fmt.Printf("  Стоимость: лучшая=%.0f средняя=%.2f стандартное отклонение=%.2f | Допустимых расписаний: %d из %d\n",
			rec.CostBest, rec.CostMean, rec.CostStd,
			rec.Feasible, rec.Samples,
		)
	}

	if err := bench.WriteCSV(cfg.Bench.Out, records); err != nil {
		return fmt.Errorf("ошибка при записи в CSV: %w", err)
	}
	fmt.Println("Saved:", cfg.Bench.Out)
	return nil
}

// helpers

func makeCases(cfg config.BenchConfig) []bench.Case {
	cases := make([]bench.Case, 0, len(cfg.Instances))
	for i, path := range cfg.Instances {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		seed := cfg.BaseSeed + int64(i)*10_000

		cases = append(cases, bench.Case{
			Name: name,
			Path: path,
			Seed: seed,
		})
	}
	return cases
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Ошибка:", err)
		os.Exit(1)
	}
}
