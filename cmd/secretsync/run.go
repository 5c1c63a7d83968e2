package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Checker-Finance/secretsync/internal/assignment"
	"github.com/Checker-Finance/secretsync/internal/config"
	"github.com/Checker-Finance/secretsync/internal/credential"
	"github.com/Checker-Finance/secretsync/internal/metrics"
	"github.com/Checker-Finance/secretsync/internal/publish"
	"github.com/Checker-Finance/secretsync/internal/secrets"
	"github.com/Checker-Finance/secretsync/pkg/utils"
	pkgsecrets "github.com/Checker-Finance/secretsync/pkg/secrets"
)

// state is populated by the root command's pre-run hook.
type state struct {
	opts rootOptions
	cfg  *config.Config
	log  *zap.Logger
}

// runRequest describes one publish run.
type runRequest struct {
	strategy     string
	target       string
	includeFixed bool
	publisher    publish.Publisher
}

// execute loads the credential document, resolves the fixed secrets, builds
// the assignments and publishes them once. Loading happens first so a bad
// credential file never produces output or an invocation.
func (s *state) execute(ctx context.Context, req runRequest) (*publish.Result, error) {
	start := time.Now()
	res, err := s.publish(ctx, req)

	count := 0
	if res != nil {
		count = res.Count
	}
	s.pushMetrics(ctx, req, start, count, err)
	return res, err
}

func (s *state) publish(ctx context.Context, req runRequest) (*publish.Result, error) {
	s.log.Info("reading credentials", zap.String("path", s.cfg.CredentialsPath))
	doc, err := credential.Load(s.cfg.CredentialsPath)
	if err != nil {
		return nil, err
	}
	s.log.Info("credentials loaded",
		zap.String("client_email", utils.MaskEmail(doc.ClientEmail)),
		zap.String("project_id", doc.ProjectID),
	)

	var fixed []assignment.Assignment
	if req.includeFixed {
		provider, err := s.provider(ctx)
		if err != nil {
			return nil, err
		}
		fixed, err = secrets.NewResolver(s.log, provider, s.cfg.FixedSecretsID).Resolve(ctx, s.cfg.FixedSecretNames)
		if err != nil {
			return nil, err
		}
	}

	assignments := assignment.Build(doc, fixed)
	s.log.Debug("assignments built", zap.Strings("names", assignment.Names(assignments)))

	return req.publisher.Publish(ctx, assignments, req.target)
}

// provider returns the source of fixed-secret values.
func (s *state) provider(ctx context.Context) (pkgsecrets.Provider, error) {
	if s.opts.provider != nil {
		return s.opts.provider, nil
	}
	if s.cfg.FixedSecretsID == "" {
		return pkgsecrets.NewEnvProvider(), nil
	}
	p, err := pkgsecrets.NewAWSProvider(ctx, s.cfg.AWSRegion)
	if err != nil {
		return nil, fmt.Errorf("create AWS Secrets Manager provider: %w", err)
	}
	return p, nil
}

func (s *state) pushMetrics(ctx context.Context, req runRequest, start time.Time, count int, runErr error) {
	if s.cfg.PushgatewayURL == "" {
		return
	}
	rec := metrics.NewRecorder()
	rec.Observe(req.strategy, start, count, runErr)
	if err := rec.Push(ctx, s.cfg.PushgatewayURL, s.cfg.ServiceName, map[string]string{"target": req.target}); err != nil {
		s.log.Warn("metrics push failed", zap.String("url", s.cfg.PushgatewayURL), zap.Error(err))
	}
}

func confirmation(res *publish.Result) string {
	switch {
	case res.Strategy == publish.StrategyEnvFile:
		return fmt.Sprintf("Wrote %d secrets to %s", res.Count, res.Path)
	case res.DryRun:
		return fmt.Sprintf("Dry run: %d secrets for %s not set", res.Count, res.Target)
	default:
		return fmt.Sprintf("Secrets set successfully for %s (%d secrets)", res.Target, res.Count)
	}
}
