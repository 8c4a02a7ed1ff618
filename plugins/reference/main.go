package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	pluginrpc "inward/internal/modules/plugin/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

type frequency struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

type report struct {
	Days           int         `json:"Days"`
	CheckInCount   int         `json:"CheckInCount"`
	Emotions       []frequency `json:"Emotions"`
	ThoughtTags    []frequency `json:"ThoughtTags"`
	Behaviours     []frequency `json:"Behaviours"`
	AlignmentScore int         `json:"AlignmentScore"`
}

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *pluginrpc.Empty) (*pluginrpc.Metadata, error) {
	return &pluginrpc.Metadata{
		Name:         "reference",
		Version:      "1.0.0",
		Capabilities: []string{"insight"},
	}, nil
}

func (s *server) GenerateInsight(_ context.Context, in *pluginrpc.InsightRequest) (*pluginrpc.InsightResponse, error) {
	if strings.TrimSpace(in.ReportJSON) == "" {
		return nil, fmt.Errorf("report json is required")
	}
	r := report{}
	if err := json.Unmarshal([]byte(in.ReportJSON), &r); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	opener := "Here is what your recent check-ins show."
	if in.Tone == "direct" {
		opener = "The numbers from your recent check-ins:"
	}

	lines := []string{opener}
	lines = append(lines, fmt.Sprintf("You checked in %d times over the last %d days.", r.CheckInCount, r.Days))
	if len(r.Emotions) > 0 {
		lines = append(lines, fmt.Sprintf("Your most frequent emotion was %q (%d times).", r.Emotions[0].Item, r.Emotions[0].Count))
	}
	if len(r.ThoughtTags) > 0 {
		lines = append(lines, fmt.Sprintf("The thought pattern that came up most was %q.", r.ThoughtTags[0].Item))
	}
	lines = append(lines, fmt.Sprintf("Your actions matched your values %d%% of the time.", r.AlignmentScore))

	suggestions := []string{}
	if r.CheckInCount == 0 {
		suggestions = append(suggestions, "Log a check-in today to start building a picture.")
	}
	if r.AlignmentScore < 50 && r.CheckInCount > 0 {
		suggestions = append(suggestions, "Pick one small action this week that lines up with a top value.")
	}
	if len(r.Behaviours) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Notice the next time you reach for %q and pause for a breath first.", r.Behaviours[0].Item))
	}

	return &pluginrpc.InsightResponse{
		Title:       fmt.Sprintf("Your last %d days", r.Days),
		Body:        strings.Join(lines, " "),
		Suggestions: suggestions,
	}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: pluginrpc.HandshakeConfig,
		Plugins:         pluginrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
