package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"tradedesk/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturingApiRequestRepository struct {
	added   []model.APIRequest
	updated []model.APIRequest
}

func (r *capturingApiRequestRepository) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	r.added = append(r.added, ar)
	return &ar, nil
}

func (r *capturingApiRequestRepository) Update(db qrm.Executable, ar model.APIRequest) error {
	r.updated = append(r.updated, ar)
	return nil
}

func newAuditTestRouter(m ApiHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(m.logRequestMiddleware)
	router.POST("/brokerage-account", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	router.POST("/strategies", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return router
}

func Test_logRequestMiddleware(t *testing.T) {
	t.Run("brokerage credentials are never persisted", func(t *testing.T) {
		auditLog := &capturingApiRequestRepository{}
		m := ApiHandler{
			Logger:               zap.NewNop().Sugar(),
			ApiRequestRepository: auditLog,
		}
		router := newAuditTestRouter(m)

		body := `{"apiKey":"AKFZTESTKEY","apiSecret":"hunter2"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/brokerage-account", strings.NewReader(body)))

		require.Len(t, auditLog.added, 1)
		require.NotNil(t, auditLog.added[0].RequestBody)
		require.Equal(t, "[redacted]", *auditLog.added[0].RequestBody)
		require.NotContains(t, *auditLog.added[0].RequestBody, "AKFZTESTKEY")
	})

	t.Run("other routes keep their bodies", func(t *testing.T) {
		auditLog := &capturingApiRequestRepository{}
		m := ApiHandler{
			Logger:               zap.NewNop().Sugar(),
			ApiRequestRepository: auditLog,
		}
		router := newAuditTestRouter(m)

		body := `{"name":"momentum"}`
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("POST", "/strategies", strings.NewReader(body)))

		require.Len(t, auditLog.added, 1)
		require.NotNil(t, auditLog.added[0].RequestBody)
		require.Equal(t, body, *auditLog.added[0].RequestBody)

		require.Len(t, auditLog.updated, 1)
		require.Equal(t, int32(200), *auditLog.updated[0].StatusCode)
	})
}
