package inbound

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/michaelosthege/hagelkorn/internal/keygen/usecase"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkgerror"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkghagel"
	"github.com/michaelosthege/hagelkorn/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Generate(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()

	count, err := parseCount(query.Get("count"))
	if err != nil {
		return nil, err
	}

	at, err := parseTime(query, "at")
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Generate(ctx, usecase.GenerateInput{
		Strategy: pkgrouter.GetParam(ctx, "strategy"),
		Count:    count,
		At:       at,
	})
	if err != nil {
		return nil, err
	}

	return GenerateResponse{
		Strategy: result.Strategy,
		IDs:      result.IDs,
		IssuedAt: result.IssuedAt.UTC(),
	}, nil
}

func (h *HTTPEndpoint) Parse(ctx context.Context, r *http.Request) (any, error) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		return nil, pkgerror.NewInvalidInput(errors.New("id is required"))
	}

	result, err := h.uc.Parse(ctx, pkgrouter.GetParam(ctx, "strategy"), id)
	if err != nil {
		return nil, err
	}

	resp := ParseResponse{
		Strategy: result.Strategy,
		ID:       result.ID,
		Time:     result.Time.UTC(),
	}
	if iv := result.Interval; iv != nil {
		resp.Interval = &Interval{Index: iv.Index, Start: iv.Start, End: iv.End}
	}

	return resp, nil
}

func (h *HTTPEndpoint) Info(ctx context.Context, _ *http.Request) (any, error) {
	info, err := h.uc.Info(ctx)
	if err != nil {
		return nil, err
	}

	return toGeneratorResponse(info), nil
}

func (h *HTTPEndpoint) Parameters(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()
	defaults := pkghagel.DefaultConfig()

	years, err := parseFloat(query, "overflow_years", defaults.OverflowYears)
	if err != nil {
		return nil, err
	}
	resolution, err := parseFloat(query, "resolution", defaults.Resolution)
	if err != nil {
		return nil, err
	}

	base := len([]rune(pkghagel.DefaultAlphabet))
	if raw := query.Get("base"); raw != "" {
		base, err = strconv.Atoi(raw)
		if err != nil {
			return nil, pkgerror.NewInvalidInput(errors.New("invalid base"))
		}
	}

	params, err := h.uc.Derive(ctx, usecase.DeriveInput{
		OverflowYears: years,
		Resolution:    resolution,
		Base:          base,
	})
	if err != nil {
		return nil, err
	}

	return toParameters(params), nil
}

func (h *HTTPEndpoint) Preview(ctx context.Context, r *http.Request) (any, error) {
	query := r.URL.Query()
	in := usecase.PreviewInput{}

	var err error
	if in.At, err = parseTime(query, "at"); err != nil {
		return nil, err
	}
	if in.Start, err = parseTime(query, "start"); err != nil {
		return nil, err
	}
	if in.Resolution, err = parseOptionalFloat(query, "resolution"); err != nil {
		return nil, err
	}
	if in.OverflowYears, err = parseOptionalFloat(query, "overflow_years"); err != nil {
		return nil, err
	}
	if query.Has("alphabet") {
		alphabet := query.Get("alphabet")
		in.Alphabet = &alphabet
	}

	result, err := h.uc.Preview(ctx, in)
	if err != nil {
		return nil, err
	}

	return PreviewResponse{
		ID:        result.ID,
		At:        result.At,
		Generator: toGeneratorResponse(result.Info),
	}, nil
}

func (h *HTTPEndpoint) Stats(ctx context.Context, _ *http.Request) (any, error) {
	stats, err := h.uc.Stats(ctx)
	if err != nil {
		return nil, err
	}

	resp := StatsResponse{Strategies: make([]StrategyStats, 0, len(stats))}
	for _, st := range stats {
		resp.Strategies = append(resp.Strategies, toStrategyStats(st))
		resp.total += st.Issued
	}

	return resp, nil
}

func (h *HTTPEndpoint) StatsFor(ctx context.Context, _ *http.Request) (any, error) {
	st, err := h.uc.StatsFor(ctx, pkgrouter.GetParam(ctx, "strategy"))
	if err != nil {
		return nil, err
	}

	return toStrategyStats(st), nil
}

func parseCount(raw string) (int, error) {
	if raw == "" {
		return usecase.DefaultCount, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > usecase.MaxCount {
		return 0, pkgerror.NewInvalidInput(fmt.Errorf("count must be between 1 and %d", usecase.MaxCount))
	}

	return value, nil
}

func parseTime(query url.Values, key string) (*time.Time, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, pkgerror.NewInvalidInput(fmt.Errorf("%s must be an RFC 3339 timestamp", key))
	}

	return &t, nil
}

func parseFloat(query url.Values, key string, fallback float64) (float64, error) {
	v, err := parseOptionalFloat(query, key)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return fallback, nil
	}
	return *v, nil
}

func parseOptionalFloat(query url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, pkgerror.NewInvalidInput(fmt.Errorf("invalid %s", key))
	}

	return &v, nil
}
