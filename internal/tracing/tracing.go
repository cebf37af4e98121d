package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/expense-analyzer/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs a jaeger tracer as the global one. When tracing is disabled
// the no-op tracer stays in place.
func Init(cfg config) (io.Closer, error) {
	if !cfg.Enabled() {
		logger.Info("tracing disabled")
		return nopCloser{}, nil
	}

	jcfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "reading jaeger env")
	}
	jcfg.ServiceName = cfg.ServiceName()
	jcfg.Sampler = &jaegercfg.SamplerConfig{
		Type:  jaeger.SamplerTypeConst,
		Param: 1,
	}

	tracer, closer, err := jcfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "cannot init tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing enabled", zap.String("service", cfg.ServiceName()))
	return closer, nil
}
