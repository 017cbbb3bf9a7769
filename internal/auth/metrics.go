package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "auth_login_total",
		Help: "Login attempts by outcome code.",
	}, []string{"outcome"})

	tokensIssuedTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "auth_tokens_issued_total",
		Help: "Token pairs issued by reason.",
	}, []string{"reason"})

	authorizationDeniedTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "auth_authorization_denied_total",
		Help: "Requests refused by the permission check.",
	}, []string{"module", "action"})
)

func outcome(err error) string {
	if err == nil {
		return "OK"
	}

	if e, ok := AsError(err); ok {
		return e.Code
	}

	return "ERROR"
}
