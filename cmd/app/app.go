package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/quizcourse/quizcourse/internal/client"
	"github.com/quizcourse/quizcourse/internal/config"
	"github.com/quizcourse/quizcourse/internal/db"
	"github.com/quizcourse/quizcourse/internal/domain"
	"github.com/quizcourse/quizcourse/internal/logger"
	"github.com/quizcourse/quizcourse/internal/repository"
	"github.com/quizcourse/quizcourse/internal/repository/dao"
	"github.com/quizcourse/quizcourse/internal/service"
)

const defaultConfigPath = "./cmd/app/config.yml"

// ErrCommandFailed is returned by Start once the failure has been reported.
var ErrCommandFailed = errors.New("command failed")

// App wires the services behind the command tree.
type App struct {
	Config *config.AppConfig

	Session   *service.SessionService
	Folders   *service.FolderService
	Games     *service.GameService
	Dashboard *service.DashboardService
	Energy    *service.EnergyService
	Language  *service.LanguageService
	Reports   *service.ReportService

	in  *bufio.Reader
	out io.Writer
}

func Start() error {
	path := configPath()

	conf, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	applyLogLevel(conf)
	if path != "" {
		if err = config.Watch(path, applyLogLevel); err != nil {
			zap.L().Warn("config watch disabled", zap.Error(err))
		}
	}

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		conf.Storage.Driver = db.DriverPostgres
		conf.Storage.DSN = dbURL
	}
	gormDB, err := db.Open(conf.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			zap.L().Warn("failed to close database", zap.Error(err))
		}
	}()

	a := New(conf, gormDB, os.Stdin, os.Stdout)
	if err = a.Execute(context.Background(), os.Args[1:]); err != nil {
		zap.L().Debug("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", userMessage(err))
		return ErrCommandFailed
	}

	return nil
}

func New(conf *config.AppConfig, gormDB *gorm.DB, in io.Reader, out io.Writer) *App {
	api := client.New(conf.API.BaseURL,
		client.WithTimeout(conf.API.Timeout),
		client.WithUserAgent("quizcourse-cli"),
	)

	settingRepo := repository.NewSettingRepository(dao.NewSettingDAO(gormDB))
	progressRepo := repository.NewProgressRepository(dao.NewProgressDAO(gormDB))

	session := service.NewSessionService(api, settingRepo)
	energy := service.NewEnergyService(settingRepo, conf.Game.MaxEnergy)
	language := service.NewLanguageService(settingRepo, domain.Language(conf.Game.DefaultLanguage))

	return &App{
		Config:    conf,
		Session:   session,
		Folders:   service.NewFolderService(api, language, progressRepo, session),
		Games:     service.NewGameService(api, progressRepo, energy, session),
		Dashboard: service.NewDashboardService(api, energy, session),
		Energy:    energy,
		Language:  language,
		Reports:   service.NewReportService(api),
		in:        bufio.NewReader(in),
		out:       out,
	}
}

func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)

	return root.ExecuteContext(ctx)
}

func configPath() string {
	if p := os.Getenv("QUIZCOURSE_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat(defaultConfigPath); errors.Is(err, os.ErrNotExist) {
		return ""
	}

	return defaultConfigPath
}

func applyLogLevel(conf *config.AppConfig) {
	if conf.API.LogLevel == "" {
		return
	}
	if err := logger.SetLevel(conf.API.LogLevel); err != nil {
		zap.L().Warn("invalid log level", zap.String("level", conf.API.LogLevel), zap.Error(err))
	}
}
