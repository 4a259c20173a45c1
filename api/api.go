package api

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"
	"tradedesk/internal/db/models/postgres/public/model"
	"tradedesk/internal/domain"
	"tradedesk/internal/logger"
	"tradedesk/internal/repository"
	"tradedesk/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                         *sql.DB
	Logger                     *zap.SugaredLogger
	UserAccountRepository      repository.UserAccountRepository
	BrokerageAccountRepository repository.BrokerageAccountRepository
	ApiRequestRepository       repository.ApiRequestRepository
	StrategyService            service.StrategyService
	AllocationService          service.AllocationService
	PerformanceService         service.PerformanceService
	JwtDecodeToken             string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.attachLoggerMiddleware)
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to tradedesk"})
	})

	authenticated := router.Group("/", m.requireAuth)
	authenticated.POST("/login", m.login)
	authenticated.GET("/strategies", m.listStrategies)
	authenticated.POST("/strategies", m.createStrategy)
	authenticated.PATCH("/strategies/:strategyID", m.updateStrategy)
	authenticated.DELETE("/strategies/:strategyID", m.deleteStrategy)
	authenticated.GET("/strategies/allocation-summary", m.getAllocationSummary)
	authenticated.GET("/strategies/allocation-summary/export", m.exportAllocationSummary)
	authenticated.POST("/brokerage-account", m.linkBrokerageAccount)
	authenticated.GET("/portfolio/performance", m.getPortfolioPerformance)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// errorStatusCode maps the service error taxonomy to HTTP codes. 4xx means
// the caller can correct the request; 5xx means we or an upstream broke.
func errorStatusCode(err error) int {
	var (
		invalidArgument     domain.InvalidArgumentError
		insufficientFunds   domain.InsufficientFundsError
		upstreamUnavailable domain.UpstreamUnavailableError
		persistenceFailure  domain.PersistenceFailureError
	)

	switch {
	case errors.As(err, &invalidArgument):
		return 400
	case errors.Is(err, domain.ErrForbidden):
		return 403
	case errors.Is(err, domain.ErrNotFound):
		return 404
	case errors.As(err, &insufficientFunds):
		return 422
	case errors.As(err, &upstreamUnavailable):
		return 502
	case errors.As(err, &persistenceFailure):
		return 500
	default:
		return 500
	}
}

func returnApiError(c *gin.Context, err error) {
	log := logger.FromContext(c.Request.Context())
	log.Errorf("request failed: %v", err)

	body := gin.H{
		"error": err.Error(),
	}

	// insufficient-funds responses carry the precise ceiling so the UI can
	// show "Maximum available: $X" without another round trip
	var insufficientFunds domain.InsufficientFundsError
	if errors.As(err, &insufficientFunds) {
		body["maxAllowable"] = insufficientFunds.MaxAllowable.InexactFloat64()
	}

	c.AbortWithStatusJSON(errorStatusCode(err), body)
}

func userAccountIDFromContext(c *gin.Context) (uuid.UUID, error) {
	ginUserAccountID, ok := c.Get("userAccountID")
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	userAccountIDStr, ok := ginUserAccountID.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted user account id")
	}

	return uuid.Parse(userAccountIDStr)
}

func (m ApiHandler) attachLoggerMiddleware(c *gin.Context) {
	ctx := context.WithValue(c.Request.Context(), logger.ContextKey, m.Logger)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// credential-bearing routes never have their request bodies persisted
var redactedBodyRoutes = map[string]bool{
	"/brokerage-account": true,
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		m.Logger.Warnf("failed to get raw request data: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	requestBody := string(body)
	if redactedBodyRoutes[ctx.Request.URL.Path] {
		requestBody = "[redacted]"
	}

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(requestBody),
		StartTs:     start,
	})
	if err != nil {
		m.Logger.Warnf("failed to record api request: %v", err)
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			m.Logger.Warnf("failed to update api request record: %v", err)
		}
	}
}
