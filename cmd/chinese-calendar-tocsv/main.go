package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/diggr909-droid/chinese-calendar-tocsv/internal/almanac"
	"github.com/diggr909-droid/chinese-calendar-tocsv/internal/config"
	"github.com/diggr909-droid/chinese-calendar-tocsv/internal/export"
	"github.com/diggr909-droid/chinese-calendar-tocsv/internal/holiday"
	"github.com/diggr909-droid/chinese-calendar-tocsv/internal/lunar"
	"github.com/diggr909-droid/chinese-calendar-tocsv/pkg/dateutil"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if isInputError(err) {
			fmt.Fprintf(os.Stderr, "❌ 输入错误：%v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "❌ 程序运行出错：%v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chinese-calendar-tocsv",
		Short: "Chinese almanac CSV exporter",
		Long:  "Export Gregorian/lunar calendar data with solar terms and PRC legal holidays to CSV",
		// Errors are reported once, by main, with the ❌ prefix
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (optional)")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(dayCmd())

	return rootCmd
}

// isInputError reports whether the failure is one of the validation
// errors the user can fix by retyping the dates
func isInputError(err error) bool {
	var formatErr *almanac.FormatError
	var orderErr *almanac.OrderError
	var rangeErr *almanac.RangeError
	return errors.As(err, &formatErr) || errors.As(err, &orderErr) || errors.As(err, &rangeErr)
}

func generateCmd() *cobra.Command {
	var startFlag string
	var endFlag string
	var outputFlag string
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the day-by-day calendar CSV for a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			startStr, endStr, err := resolveRange(cmd.InOrStdin(), startFlag, endFlag)
			if err != nil {
				return err
			}

			bounds := almanac.Bounds{MinYear: cfg.Calendar.MinYear, MaxYear: cfg.Calendar.MaxYear}
			start, end, err := almanac.ParseRange(startStr, endStr, bounds)
			if err != nil {
				return err
			}

			outputPath := outputFlag
			if outputPath == "" {
				outputPath = export.DefaultPath(cfg.Output.Dir, start, end)
			}

			logger.Info("Generating calendar export",
				zap.String("start", dateutil.FormatDate(start)),
				zap.String("end", dateutil.FormatDate(end)),
				zap.String("output", outputPath))

			generator := almanac.NewGenerator(
				lunar.NewConverter(),
				holiday.NewSchedule(logger),
				cfg.Output.FestivalSeparator,
				logger,
			)

			fmt.Println("\n正在生成日历数据...")

			f, err := export.CreateFile(outputPath)
			if err != nil {
				return err
			}

			writer, err := export.NewCSVWriter(f, outputPath, cfg.Output.BOM)
			if err != nil {
				f.Close()
				return err
			}

			var bar *progressbar.ProgressBar
			if !noProgress {
				bar = progressbar.NewOptions(dateutil.DaysBetween(start, end),
					progressbar.OptionSetDescription("写入中"),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}

			rows := 0
			err = generator.EachDay(start, end, func(rec *almanac.DayRecord) error {
				if err := writer.Write(rec); err != nil {
					return err
				}
				rows++
				if bar != nil {
					_ = bar.Add(1)
				}
				return nil
			})
			if bar != nil {
				_ = bar.Finish()
			}
			if err != nil {
				f.Close()
				return err
			}

			if err := writer.Flush(); err != nil {
				f.Close()
				return err
			}
			// Single checked close; a second deferred close would
			// only discard this error
			if err := f.Close(); err != nil {
				return &export.WriteError{Path: outputPath, Err: err}
			}

			logger.Info("Export finished",
				zap.Int("rows", rows),
				zap.String("output", outputPath))
			fmt.Printf("✅ 日历数据已成功导出至：%s\n", outputPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "Start date YYYY-MM-DD (prompted when omitted)")
	cmd.Flags().StringVar(&endFlag, "end", "", "End date YYYY-MM-DD (prompted when omitted)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default: derived from the range)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")

	return cmd
}

func dayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day <date>",
		Short: "Print the almanac record for a single date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			bounds := almanac.Bounds{MinYear: cfg.Calendar.MinYear, MaxYear: cfg.Calendar.MaxYear}
			date, _, err := almanac.ParseRange(args[0], args[0], bounds)
			if err != nil {
				return err
			}

			generator := almanac.NewGenerator(
				lunar.NewConverter(),
				holiday.NewSchedule(logger),
				cfg.Output.FestivalSeparator,
				logger,
			)

			return generator.EachDay(date, date, func(rec *almanac.DayRecord) error {
				printRecord(cmd.OutOrStdout(), rec)
				return nil
			})
		},
	}

	return cmd
}

func printRecord(w io.Writer, rec *almanac.DayRecord) {
	fmt.Fprintf(w, "公历：%s（%s，第%d周，%s）\n",
		dateutil.FormatDate(rec.Date), rec.Weekday, rec.ISOWeek, rec.Decade)
	leap := ""
	if rec.LeapMonth {
		leap = "闰"
	}
	fmt.Fprintf(w, "农历：%d年%s%d月%d日（%s年）\n",
		rec.LunarYear, leap, rec.LunarMonth, rec.LunarDay, rec.Zodiac)
	if rec.Festivals != "" {
		fmt.Fprintf(w, "节日：%s\n", rec.Festivals)
	}
	if rec.SolarTerm != "" {
		fmt.Fprintf(w, "节气：%s\n", rec.SolarTerm)
	}
	switch {
	case rec.Holiday:
		fmt.Fprintf(w, "法定节假日：%s\n", rec.HolidayName)
	case rec.Workday:
		fmt.Fprintln(w, "工作日")
	default:
		fmt.Fprintln(w, "休息日")
	}
}

// resolveRange fills missing start/end dates, prompting interactively
// the way the tool has always done: empty input falls back to January 1
// and December 31 of the current year.
func resolveRange(in io.Reader, startFlag, endFlag string) (string, string, error) {
	currentYear := dateutil.Today().Year()
	defaultStart := fmt.Sprintf("%d-01-01", currentYear)
	defaultEnd := fmt.Sprintf("%d-12-31", currentYear)

	if startFlag != "" && endFlag != "" {
		return startFlag, endFlag, nil
	}

	fmt.Println("====================================")
	fmt.Println("       日历数据生成工具")
	fmt.Println("====================================")

	reader := bufio.NewReader(in)

	start := startFlag
	if start == "" {
		var err error
		start, err = promptDate(reader, "开始日期", defaultStart)
		if err != nil {
			return "", "", err
		}
	}

	end := endFlag
	if end == "" {
		var err error
		end, err = promptDate(reader, "结束日期", defaultEnd)
		if err != nil {
			return "", "", err
		}
	}

	return start, end, nil
}

// promptDate reads one line; empty input selects the default
func promptDate(reader *bufio.Reader, label, defaultValue string) (string, error) {
	fmt.Printf("请输入%s（格式：YYYY-MM-DD，默认：%s）: ", label, defaultValue)

	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", label, err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return defaultValue, nil
	}
	return line, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
