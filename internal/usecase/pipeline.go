package usecase

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xavierca1/carretel-crm/internal/entity"
)

// DeletedContactLabel aparece no lugar do nome quando o contactId não existe mais.
const DeletedContactLabel = "Contato Excluído"

type StageStat struct {
	Phase entity.FunnelPhase `json:"name"`
	Count int                `json:"count"`
	Value float64            `json:"value"`
}

type PipelineStats struct {
	TotalOpportunities int     `json:"totalOpportunities"`
	TotalValue         float64 `json:"totalValue"`
	ConversionRate     float64 `json:"conversionRate"`
}

// Dashboard é a visão consolidada da tela inicial.
type Dashboard struct {
	Stats               PipelineStats `json:"stats"`
	Stages              []StageStat   `json:"stages"`
	ContactCount        int           `json:"contactCount"`
	PipelineValueLabel  string        `json:"pipelineValueLabel"`
	ConversionRateLabel string        `json:"conversionRateLabel"`
}

type CalendarMonth struct {
	Year         int                          `json:"year"`
	Month        time.Month                   `json:"month"`
	DaysInMonth  int                          `json:"daysInMonth"`
	FirstWeekday time.Weekday                 `json:"firstWeekday"`
	Days         map[int][]entity.Opportunity `json:"days"`
}

// StageBreakdown agrupa por etapa. As 5 etapas sempre aparecem, mesmo vazias.
func StageBreakdown(opps []entity.Opportunity) []StageStat {
	phases := entity.Phases()
	stats := make([]StageStat, len(phases))
	index := make(map[entity.FunnelPhase]int, len(phases))
	for i, p := range phases {
		stats[i] = StageStat{Phase: p}
		index[p] = i
	}
	for _, o := range opps {
		i, ok := index[o.Phase]
		if !ok {
			continue
		}
		stats[i].Count++
		stats[i].Value += o.EffectiveValue()
	}
	return stats
}

func ComputeStats(opps []entity.Opportunity) PipelineStats {
	stats := PipelineStats{TotalOpportunities: len(opps)}
	won := 0
	for _, o := range opps {
		stats.TotalValue += o.EffectiveValue()
		if o.Phase == entity.PhaseWon {
			won++
		}
	}
	if stats.TotalOpportunities > 0 {
		stats.ConversionRate = float64(won) / float64(stats.TotalOpportunities) * 100
	}
	return stats
}

func BuildDashboard(contacts []entity.Contact, opps []entity.Opportunity) Dashboard {
	stats := ComputeStats(opps)
	return Dashboard{
		Stats:               stats,
		Stages:              StageBreakdown(opps),
		ContactCount:        len(contacts),
		PipelineValueLabel:  FormatPipelineValue(stats.TotalValue),
		ConversionRateLabel: FormatConversionRate(stats.ConversionRate),
	}
}

// BuildCalendarMonth mapeia cada dia do mês às oportunidades cuja visitDate
// ou lastMeetingDate é exatamente aquela data.
func BuildCalendarMonth(opps []entity.Opportunity, year int, month time.Month) CalendarMonth {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cal := CalendarMonth{
		Year:         year,
		Month:        month,
		DaysInMonth:  daysInMonth,
		FirstWeekday: first.Weekday(),
		Days:         make(map[int][]entity.Opportunity, daysInMonth),
	}
	for day := 1; day <= daysInMonth; day++ {
		dayStr := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		bucket := []entity.Opportunity{}
		for _, o := range opps {
			if o.VisitDate == dayStr || o.LastMeetingDate == dayStr {
				bucket = append(bucket, o)
			}
		}
		cal.Days[day] = bucket
	}
	return cal
}

// Upcoming devolve, na ordem de inserção, as oportunidades com visita hoje
// ou depois. Não trunca.
func Upcoming(opps []entity.Opportunity, today time.Time) []entity.Opportunity {
	todayStr := entity.FormatDate(today)
	out := []entity.Opportunity{}
	for _, o := range opps {
		if entity.IsValidDate(o.VisitDate) && o.VisitDate >= todayStr {
			out = append(out, o)
		}
	}
	return out
}

func ContactName(contacts []entity.Contact, id string) string {
	for _, c := range contacts {
		if c.ID == id {
			return c.Name
		}
	}
	return DeletedContactLabel
}

// FormatPipelineValue formata em milhares de reais, ex.: "R$ 165,0k".
func FormatPipelineValue(v float64) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return p.Sprintf("R$ %.1fk", v/1000)
}

// FormatConversionRate formata a taxa com uma casa, ex.: "50,0%".
func FormatConversionRate(rate float64) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return p.Sprintf("%.1f%%", rate)
}
