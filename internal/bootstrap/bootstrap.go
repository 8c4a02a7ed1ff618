package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	checkininadapter "inward/internal/modules/checkin/adapter/in"
	checkinoutadapter "inward/internal/modules/checkin/adapter/out"
	checkinout "inward/internal/modules/checkin/port/out"
	checkinservice "inward/internal/modules/checkin/service"
	checkinusecase "inward/internal/modules/checkin/usecase"
	exportinadapter "inward/internal/modules/export/adapter/in"
	exportservice "inward/internal/modules/export/service"
	insightsinadapter "inward/internal/modules/insights/adapter/in"
	insightsoutadapter "inward/internal/modules/insights/adapter/out"
	insightsusecase "inward/internal/modules/insights/usecase"
	journeyinadapter "inward/internal/modules/journey/adapter/in"
	journeyoutadapter "inward/internal/modules/journey/adapter/out"
	journeyservice "inward/internal/modules/journey/service"
	journeyusecase "inward/internal/modules/journey/usecase"
	plugininadapter "inward/internal/modules/plugin/adapter/in"
	pluginoutadapter "inward/internal/modules/plugin/adapter/out"
	pluginusecase "inward/internal/modules/plugin/usecase"
	profileinadapter "inward/internal/modules/profile/adapter/in"
	profileoutadapter "inward/internal/modules/profile/adapter/out"
	profileservice "inward/internal/modules/profile/service"
	"inward/internal/platform/clock"
	"inward/internal/platform/config"
	"inward/internal/platform/id"
	"inward/internal/platform/kv"
	"inward/internal/platform/timer"
	uiapp "inward/internal/ui/app"

	checkinin "inward/internal/modules/checkin/port/in"
	insightsin "inward/internal/modules/insights/port/in"
	journeyin "inward/internal/modules/journey/port/in"
	pluginin "inward/internal/modules/plugin/port/in"
	pluginservice "inward/internal/modules/plugin/service"
	profilein "inward/internal/modules/profile/port/in"
)

// App wires every module against the shared kv store and exposes the
// inbound handlers the CLI and TUI consume.
type App struct {
	JourneyCLI  journeyinadapter.CLIHandler
	CheckInCLI  checkininadapter.CLIHandler
	InsightsCLI insightsinadapter.CLIHandler
	ProfileCLI  profileinadapter.CLIHandler
	PluginCLI   plugininadapter.CLIHandler
	ExportCLI   exportinadapter.CLIHandler

	journeyUC  journeyin.Usecase
	checkinUC  checkinin.Usecase
	insightsUC insightsin.Usecase
	pluginUC   pluginin.Usecase
	profileUC  profilein.Usecase

	index *checkinoutadapter.SQLiteIndexProjector
	log   *zap.Logger
}

func New(cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	clk := clock.SystemClock{}
	ids := id.PrefixedEpoch{Clock: clk}
	store := kv.NewFileStore(cfg.StorePath, log)

	journeySvc := journeyservice.NewJourneyService(
		clk,
		ids,
		journeyoutadapter.NewKVCurrentStore(store),
		journeyoutadapter.NewKVHistoryStore(store),
		journeyoutadapter.NewFileNoteStore(cfg.NotesPath, log),
	)
	journeyUC := journeyusecase.NewController(journeySvc, clk, timer.AfterFuncScheduler{})

	// The sqlite index is a rebuildable read model; when it cannot be
	// opened the check-in module runs without aggregates.
	var index checkinout.IndexProjector
	sqlIndex, err := checkinoutadapter.NewSQLiteIndexProjector(cfg.DBPath, nil)
	if err != nil {
		log.Warn("check-in index unavailable", zap.Error(err))
	} else {
		index = sqlIndex
	}
	checkinSvc := checkinservice.NewCheckInService(clk, ids, checkinoutadapter.NewKVCheckInStore(store), nil)
	checkinUC := checkinusecase.NewInteractor(checkinSvc, index, log)

	profileUC := profileservice.NewProfileService(clk, profileoutadapter.NewKVProfileStore(store))

	insightsUC := insightsusecase.NewInteractor(
		clk,
		ids,
		checkinUC,
		profileUC,
		journeyUC,
		insightsoutadapter.NewKVPatternStore(store),
		insightsoutadapter.NewKVWeeklyStore(store),
	)

	pluginSvc := pluginservice.NewPluginService(
		pluginoutadapter.NewFileManifestStore(cfg.PluginsPath),
		pluginoutadapter.NewGRPCHost(),
	)
	pluginUC := pluginusecase.NewInteractor(pluginSvc, insightsUC, profileUC)

	exportUC := exportservice.NewExportService(clk, store)

	return &App{
		JourneyCLI:  journeyinadapter.NewCLIHandler(journeyUC),
		CheckInCLI:  checkininadapter.NewCLIHandler(checkinUC),
		InsightsCLI: insightsinadapter.NewCLIHandler(insightsUC),
		ProfileCLI:  profileinadapter.NewCLIHandler(profileUC),
		PluginCLI:   plugininadapter.NewCLIHandler(pluginUC),
		ExportCLI:   exportinadapter.NewCLIHandler(exportUC),
		journeyUC:   journeyUC,
		checkinUC:   checkinUC,
		insightsUC:  insightsUC,
		pluginUC:    pluginUC,
		profileUC:   profileUC,
		index:       sqlIndex,
		log:         log,
	}, nil
}

// Close flushes the debounced journey write and releases the index.
// Safe to call once at process exit.
func (a *App) Close() {
	a.journeyUC.Flush()
	if a.index != nil {
		a.index.Close()
	}
	_ = a.log.Sync()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.journeyUC, app.checkinUC, app.insightsUC, app.pluginUC)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
