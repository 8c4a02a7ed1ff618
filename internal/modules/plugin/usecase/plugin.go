package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	insightsin "inward/internal/modules/insights/port/in"
	"inward/internal/modules/plugin/domain"
	"inward/internal/modules/plugin/dto"
	pluginin "inward/internal/modules/plugin/port/in"
	"inward/internal/modules/plugin/service"
	profilein "inward/internal/modules/profile/port/in"
)

const defaultReportDays = 7

// Interactor feeds plugins with the same report the built-in insight
// engine produces, plus the person's tone preference.
type Interactor struct {
	svc      *service.PluginService
	insights insightsin.Usecase
	profile  profilein.Usecase
}

var _ pluginin.Usecase = (*Interactor)(nil)

func NewInteractor(svc *service.PluginService, insights insightsin.Usecase, profile profilein.Usecase) *Interactor {
	return &Interactor{svc: svc, insights: insights, profile: profile}
}

func (i *Interactor) List(ctx context.Context) ([]dto.PluginInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

func (i *Interactor) GenerateInsight(ctx context.Context, input dto.InsightInput) (dto.InsightOutput, error) {
	days := input.Days
	if days <= 0 {
		days = defaultReportDays
	}
	report, err := i.insights.Report(ctx, days)
	if err != nil {
		return dto.InsightOutput{}, fmt.Errorf("build plugin report: %w", err)
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return dto.InsightOutput{}, fmt.Errorf("encode plugin report: %w", err)
	}
	request := domain.InsightRequest{
		ReportJSON: string(payload),
		Tone:       i.profile.Preferences(ctx).Tone,
	}
	result, err := i.svc.Generate(ctx, input.PluginName, request)
	if err != nil {
		return dto.InsightOutput{}, err
	}
	return dto.InsightOutput{
		PluginName:  input.PluginName,
		Title:       result.Title,
		Body:        result.Body,
		Suggestions: result.Suggestions,
	}, nil
}
