package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/MedAliAdlouni/mcq-generator/internal/client"
	"github.com/MedAliAdlouni/mcq-generator/internal/logger"
	"github.com/MedAliAdlouni/mcq-generator/internal/quiz"
	"github.com/MedAliAdlouni/mcq-generator/internal/results"
	"github.com/MedAliAdlouni/mcq-generator/internal/ui"
)

const defaultChartWidth = 60

type App struct {
	cfg Config
	log *zap.Logger
	api *client.Client
}

func New(cfg Config) (*App, error) {
	if cfg.ChartWidth == 0 {
		cfg.ChartWidth = defaultChartWidth
	}

	l, err := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return nil, err
	}

	api := client.New(client.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.RequestTimeout,
		Logger:  l,
	})

	return &App{cfg: cfg, log: l, api: api}, nil
}

func (a *App) Client() *client.Client { return a.api }
func (a *App) Logger() *zap.Logger    { return a.log }

// Play loads a question file, starts a session, and runs the interactive
// quiz until the player leaves.
func (a *App) Play(questionsPath, documentID string) error {
	questions, err := quiz.Load(questionsPath)
	if err != nil {
		return err
	}

	session, err := quiz.NewSession(documentID, questions)
	if err != nil {
		return err
	}

	a.log.Info("quiz session started",
		zap.String("session_id", session.ID),
		zap.String("document_id", documentID),
		zap.Int("questions", session.Total()),
	)

	_, err = tea.NewProgram(ui.NewPlay(session, a.api, a.log)).Run()
	return err
}

// Results runs the play-history view over the given document ids.
func (a *App) Results(docs []string) error {
	ctrl := results.NewController(a.api, results.NewLineChart(a.cfg.ChartWidth), a.log)
	_, err := tea.NewProgram(ui.NewResults(ctrl, docs, a.log)).Run()
	return err
}

func (a *App) Close() {
	if a.log != nil {
		_ = a.log.Sync()
	}
}
