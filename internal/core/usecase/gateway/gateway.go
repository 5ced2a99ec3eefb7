package gateway

import (
	"context"
	"errors"
	"fmt"

	"healthgate/internal/core/domain/auth"
	"healthgate/internal/core/ports"
	"healthgate/internal/platform/logger"
)

// Action is what the transport layer must do with a request once the
// gateway has decided on it.
type Action int

const (
	// ActionPass lets a public request through unauthenticated.
	ActionPass Action = iota
	// ActionForward dispatches a protected request with its grant attached.
	ActionForward
	// ActionServe means the gateway answers a monitoring request itself.
	ActionServe
	// ActionReject answers 401.
	ActionReject
)

func (a Action) String() string {
	switch a {
	case ActionPass:
		return "pass"
	case ActionForward:
		return "forward"
	case ActionServe:
		return "serve"
	case ActionReject:
		return "reject"
	default:
		return "unknown"
	}
}

// Request carries the parts of an inbound request the gateway looks at.
type Request struct {
	Path          string
	APIKey        string
	Authorization string
}

// Decision is the outcome of authenticating one request. Grant is set for
// ActionForward and ActionServe, Failure for ActionReject. Target is only
// meaningful for the monitoring class.
type Decision struct {
	Class   auth.RouteClass
	Action  Action
	Grant   *auth.AuthorityGrant
	Failure *auth.Failure
	Target  Target
}

type Gateway struct {
	classifier *auth.Classifier
	keys       auth.KeyCredential
	tokens     *auth.TokenCredential
	verifier   ports.TokenVerifier
	metrics    ports.MetricsSink
}

func NewGateway(
	classifier *auth.Classifier,
	keys auth.KeyCredential,
	tokens *auth.TokenCredential,
	verifier ports.TokenVerifier,
	metrics ports.MetricsSink,
) *Gateway {
	if metrics == nil {
		metrics = ports.NopMetrics()
	}
	return &Gateway{
		classifier: classifier,
		keys:       keys,
		tokens:     tokens,
		verifier:   verifier,
		metrics:    metrics,
	}
}

// Decide classifies the request path and runs the credential check of the
// resulting class. It never returns without a decision.
func (g *Gateway) Decide(ctx context.Context, req Request) Decision {
	class := g.classifier.Classify(req.Path)

	switch class {
	case auth.RoutePublic:
		return Decision{Class: class, Action: ActionPass}
	case auth.RouteMonitoring:
		return g.decideMonitoring(ctx, req)
	default:
		return g.decideProtected(ctx, req)
	}
}

func (g *Gateway) decideMonitoring(ctx context.Context, req Request) Decision {
	decision := Decision{Class: auth.RouteMonitoring, Target: ParseTarget(req.Path)}

	var provided string
	if key, ok := auth.APIKeyFromHeader(req.APIKey).(auth.APIKey); ok {
		provided = key.Raw
	}

	if err := g.keys.Check(provided); err != nil {
		return g.reject(ctx, decision, auth.NewFailure(auth.RouteMonitoring, err),
			logger.String("target", decision.Target.String()))
	}

	decision.Action = ActionServe
	decision.Grant = auth.MonitoringGrant()
	return decision
}

func (g *Gateway) decideProtected(ctx context.Context, req Request) Decision {
	decision := Decision{Class: auth.RouteProtected}

	bearer, ok := auth.BearerFromHeader(req.Authorization).(auth.BearerToken)
	if !ok {
		return g.reject(ctx, decision, auth.NewFailure(auth.RouteProtected, auth.ErrTokenMissing))
	}

	claims, err := g.VerifyToken(ctx, bearer.Raw)
	if err != nil {
		return g.reject(ctx, decision, auth.NewFailure(auth.RouteProtected, err))
	}

	decision.Action = ActionForward
	decision.Grant = auth.TokenGrant(claims)
	return decision
}

// VerifyToken runs the trust-anchored verification and then interprets the
// claims. Errors wrap one of the auth token sentinels.
func (g *Gateway) VerifyToken(ctx context.Context, raw string) (*auth.Claims, error) {
	if raw == "" {
		return nil, auth.ErrTokenMissing
	}
	if err := g.verifier.Verify(ctx, raw); err != nil {
		if errors.Is(err, auth.ErrTokenMalformed) || errors.Is(err, auth.ErrTokenUnverified) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", auth.ErrTokenUnverified, err)
	}
	return g.tokens.Validate(raw)
}

func (g *Gateway) reject(ctx context.Context, decision Decision, failure *auth.Failure, fields ...logger.Field) Decision {
	g.metrics.AuthFailed(ctx, string(failure.Domain), failure.Reason())

	fields = append(fields,
		logger.String("domain", string(failure.Domain)),
		logger.String("reason", failure.Reason()),
		logger.Error(failure.Err),
	)
	logger.FromContext(ctx).Warn("Authentication failed", fields...)

	decision.Action = ActionReject
	decision.Failure = failure
	return decision
}
