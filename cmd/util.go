package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"tradedesk/api"
	"tradedesk/internal"
	"tradedesk/internal/logger"
	"tradedesk/internal/repository"
	"tradedesk/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	userAccountRepository := repository.NewUserAccountRepository(dbConn)
	strategyRepository := repository.NewStrategyRepository(dbConn)
	brokerageAccountRepository := repository.NewBrokerageAccountRepository(dbConn)

	alpacaClientProvider := service.NewAlpacaClientProvider(brokerageAccountRepository)
	balanceProvider := service.NewAccountBalanceProvider(alpacaClientProvider)

	allocationService := service.NewAllocationService(strategyRepository, balanceProvider)
	strategyService := service.NewStrategyService(strategyRepository)
	performanceService := service.NewPerformanceService(alpacaClientProvider)

	apiHandler := &api.ApiHandler{
		Db:                         dbConn,
		Logger:                     logger.New(),
		UserAccountRepository:      userAccountRepository,
		BrokerageAccountRepository: brokerageAccountRepository,
		ApiRequestRepository:       repository.ApiRequestRepositoryHandler{},
		StrategyService:            strategyService,
		AllocationService:          allocationService,
		PerformanceService:         performanceService,
		JwtDecodeToken:             secrets.Jwt,
	}

	return apiHandler, nil
}
