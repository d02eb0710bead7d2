// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/rc-finance/backend/config"
	"github.com/rc-finance/backend/internal/application/adapter"
	"github.com/rc-finance/backend/internal/application/usecase/allocation"
	"github.com/rc-finance/backend/internal/application/usecase/goal"
	"github.com/rc-finance/backend/internal/domain/valueobject"
	"github.com/rc-finance/backend/internal/infra/server/router"
	"github.com/rc-finance/backend/internal/integration/entrypoint/controller"
	"github.com/rc-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/rc-finance/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The clock is injected so tests can pin "today" for urgency scoring.
func NewInjector(cfg *config.Config, db *gorm.DB, clock adapter.Clock) *Injector {
	// Create repositories
	goalRepo := persistence.NewGoalRepository(db)
	weightRepo := persistence.NewWeightRepository(db)
	historyRepo := persistence.NewFundingHistoryRepository(db)

	// Engine parameters
	params := valueobject.AllocationParams{
		Epsilon: cfg.Allocation.Epsilon,
	}
	tuner := allocation.NewMeanErrorTuner(cfg.Allocation.LearningRate)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	fundGoalUseCase := goal.NewFundGoalUseCase(goalRepo)

	// Create allocation use cases
	previewPlanUseCase := allocation.NewPreviewPlanUseCase(goalRepo, weightRepo, clock, params)
	applyPlanUseCase := allocation.NewApplyPlanUseCase(previewPlanUseCase, goalRepo, historyRepo, clock)
	getWeightsUseCase := allocation.NewGetWeightsUseCase(weightRepo)
	tuneWeightsUseCase := allocation.NewTuneWeightsUseCase(historyRepo, weightRepo, tuner)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		fundGoalUseCase,
	)

	allocationController := controller.NewAllocationController(
		previewPlanUseCase,
		applyPlanUseCase,
		getWeightsUseCase,
		tuneWeightsUseCase,
	)

	// Create middleware
	userMiddleware := middleware.NewUserMiddleware()

	r := router.NewRouter(
		healthController,
		goalController,
		allocationController,
		userMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
