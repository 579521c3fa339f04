package trips_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripcheck/internal/api/controllers"
	"tripcheck/internal/repositories"
	"tripcheck/internal/services"
	"tripcheck/internal/validation"
	mem "tripcheck/pkg/memcache"
	"tripcheck/pkg/utils"
)

var Module = fx.Provide(
	provideTripsRepo,
	provideTripsService,
	provideTripsController,
	provideValidationController)

func provideTripsRepo(db *gorm.DB) repositories.TripRepositoryInterface {
	return repositories.NewTripRepository(db)
}

func provideTripsService(
	tripRepo repositories.TripRepositoryInterface,
	planner utils.PlannerClientInterface,
	validator *validation.ItineraryValidator,
	reports mem.ReportStore,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, planner, validator, reports)
}

func provideTripsController(tripService services.TripServiceInterface) *controllers.TripsController {
	return controllers.NewTripsController(tripService)
}

func provideValidationController(tripService services.TripServiceInterface) *controllers.ValidationController {
	return controllers.NewValidationController(tripService)
}
