package api

import (
	"tradedesk/internal/db/models/postgres/public/model"
	"tradedesk/internal/domain"
	"tradedesk/internal/repository"

	"github.com/gin-gonic/gin"
)

const defaultAlpacaEndpoint = "https://paper-api.alpaca.markets"

type linkBrokerageAccountRequest struct {
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

func (m ApiHandler) linkBrokerageAccount(c *gin.Context) {
	var requestBody linkBrokerageAccountRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnApiError(c, domain.InvalidArgumentError{Reason: err.Error()})
		return
	}
	if requestBody.APIKey == "" || requestBody.APISecret == "" {
		returnApiError(c, domain.InvalidArgumentError{Reason: "apiKey and apiSecret are required"})
		return
	}
	if requestBody.Endpoint == "" {
		requestBody.Endpoint = defaultAlpacaEndpoint
	}

	userAccountID, err := userAccountIDFromContext(c)
	if err != nil {
		returnApiError(c, err)
		return
	}

	account, err := m.BrokerageAccountRepository.Upsert(model.BrokerageAccount{
		UserAccountID: userAccountID,
		Provider:      repository.BrokerageProviderAlpaca,
		APIKey:        requestBody.APIKey,
		APISecret:     requestBody.APISecret,
		Endpoint:      requestBody.Endpoint,
	})
	if err != nil {
		returnApiError(c, domain.PersistenceFailureError{Err: err})
		return
	}

	// credentials are write-only; never echoed back
	out := map[string]string{
		"brokerageAccountID": account.BrokerageAccountID.String(),
		"provider":           account.Provider,
		"endpoint":           account.Endpoint,
	}

	c.JSON(200, out)
}
