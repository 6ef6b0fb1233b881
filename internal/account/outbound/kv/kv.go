package kv

import (
	"context"
	"errors"

	"github.com/shandysiswandi/ayola/internal/pkg/goerror"
	"github.com/shandysiswandi/ayola/internal/pkg/instrument"
	"github.com/shandysiswandi/ayola/internal/pkg/kvstore"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type KV struct {
	store kvstore.Store
	ins   instrument.Instrumentation
}

func NewKV(store kvstore.Store, ins instrument.Instrumentation) *KV {
	return &KV{store: store, ins: ins}
}

func (s *KV) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("account.outbound.kv").Start(ctx, name)
}

func (s *KV) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
