// RequestId处理

package response

import (
	"net/http"
	"time"

	"github.com/go-apibox/cache"
	"github.com/streadway/simpleuuid"
)

// RequestIdMaker is a middleware handler that auto generate the request id and append to response header.
// If the request already carries an X-Request-Id header, it is echoed back
// unchanged so that ids survive proxy chains.
type RequestIdMaker struct {
	reqIdCache *cache.Cache
}

// NewRequestIdMaker returns a new RequestIdMaker instance
func NewRequestIdMaker() *RequestIdMaker {
	return &RequestIdMaker{cache.NewCache(time.Duration(10) * time.Second)}
}

func (m *RequestIdMaker) ServeHTTP(rw http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	reqId := r.Header.Get("X-Request-Id")
	if reqId == "" {
		for {
			uuid, err := simpleuuid.NewTime(time.Now())
			if err != nil {
				continue
			}
			reqId = uuid.String()
			// 短时间内生成的uuid可能重复
			if _, exists := m.reqIdCache.Get(reqId); !exists {
				break
			}
		}
	}
	rw.Header().Set("X-Request-Id", reqId)

	next(rw, r)
}
