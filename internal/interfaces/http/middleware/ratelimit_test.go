package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"art/internal/infrastructure/ratelimit"
	"art/internal/shared/constants"
	"art/internal/shared/logger"
)

type fakeLimiter struct {
	remaining map[string]int
	keys      []string
	err       error
}

func (f *fakeLimiter) Allow(ctx context.Context, key string, windows ...ratelimit.Window) (bool, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return false, f.err
	}
	if f.remaining[key] <= 0 {
		return false, nil
	}
	f.remaining[key]--
	return true, nil
}

func (f *fakeLimiter) Reset(ctx context.Context, key string) error {
	delete(f.remaining, key)
	return nil
}

func newRateLimitedEngine(limiter ratelimit.RateLimiter, userID uint) *gin.Engine {
	engine := gin.New()
	engine.POST("/assets/:id/incidents",
		func(c *gin.Context) {
			if userID != 0 {
				c.Set(constants.ContextKeyUserID, userID)
			}
			c.Next()
		},
		NewReportRateLimiter(limiter, 2, 0, logger.NewDiscardLogger()).Limit("incidents"),
		func(c *gin.Context) { c.Status(http.StatusCreated) },
	)
	return engine
}

func postIncident(engine *gin.Engine) int {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/assets/1/incidents", nil))
	return w.Code
}

func TestReportRateLimiter_Limit(t *testing.T) {
	limiter := &fakeLimiter{remaining: map[string]int{"incidents:user:7": 2}}
	engine := newRateLimitedEngine(limiter, 7)

	assert.Equal(t, http.StatusCreated, postIncident(engine))
	assert.Equal(t, http.StatusCreated, postIncident(engine))
	assert.Equal(t, http.StatusTooManyRequests, postIncident(engine))
	assert.Equal(t, []string{"incidents:user:7", "incidents:user:7", "incidents:user:7"}, limiter.keys)
}

func TestReportRateLimiter_LimiterErrorAllows(t *testing.T) {
	limiter := &fakeLimiter{err: stderrors.New("redis down")}
	engine := newRateLimitedEngine(limiter, 7)

	assert.Equal(t, http.StatusCreated, postIncident(engine))
}

func TestReportRateLimiter_SkipsAnonymous(t *testing.T) {
	limiter := &fakeLimiter{}
	engine := newRateLimitedEngine(limiter, 0)

	assert.Equal(t, http.StatusCreated, postIncident(engine))
	assert.Empty(t, limiter.keys)
}
