package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ctxSuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(ctxSuite))
}

func (ts *ctxSuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "key", "val")
	ts.Equal("val", ctx.Value("key"))
}

func (ts *ctxSuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"auction": "hash",
		"seller":  "address",
	})
	ts.Equal("hash", ctx.Value("auction"))
	ts.Equal("address", ctx.Value("seller"))
}

func (ts *ctxSuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	defer cancel()
	waits := func(ctx context.Context) bool {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(100 * time.Millisecond):
			return true
		}
	}
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	ts.False(waits(ctx))
}

func (ts *ctxSuite) TestWithTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	waits := func(ctx context.Context) bool {
		select {
		case <-ctx.Done():
			return false
		case <-time.After(100 * time.Millisecond):
			return true
		}
	}
	ts.False(waits(ctx))
	ts.Equal("context deadline exceeded", ctx.Err().Error())
}
