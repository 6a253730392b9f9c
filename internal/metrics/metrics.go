package metrics

import (
	"fmt"
	"io"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"

	"github.com/fraudwatch/fraudwatch/internal/report"
)

// Encode writes run as Prometheus text exposition format.
func Encode(w io.Writer, run *report.Run) error {
	families := []*dto.MetricFamily{
		gauge("fraudwatch_run_duration_seconds",
			"Wall-clock duration of the scheduling pass.",
			metric(nil, run.Duration.Seconds())),
		gauge("fraudwatch_run_alerts",
			"Number of input alerts in the run.",
			metric(nil, float64(run.AlertCount))),
		gauge("fraudwatch_run_assigned",
			"Number of alerts assigned across all teams.",
			metric(nil, float64(run.TotalAssigned))),
		gauge("fraudwatch_run_unassigned",
			"Number of alerts no team could take.",
			metric(nil, float64(len(run.UnassignedIDs)))),
	}

	var assigned, fatigue, utilization, skill []*dto.Metric
	for _, row := range run.Teams {
		labels := teamLabels(row.Name)
		assigned = append(assigned, metric(labels, float64(row.Assigned)))
		fatigue = append(fatigue, metric(labels, row.Fatigue))
		utilization = append(utilization, metric(labels, row.Utilization))
		skill = append(skill, metric(labels, row.Skill))
	}
	families = append(families,
		gauge("fraudwatch_team_assigned", "Alerts assigned to the team.", assigned...),
		gauge("fraudwatch_team_fatigue", "Team fatigue after the run.", fatigue...),
		gauge("fraudwatch_team_utilization", "Total assigned duration for the team.", utilization...),
		gauge("fraudwatch_team_skill", "Constant team skill factor.", skill...),
	)

	for _, mf := range families {
		if len(mf.Metric) == 0 {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func gauge(name, help string, metrics ...*dto.Metric) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_GAUGE.Enum(),
		Metric: metrics,
	}
}

func metric(labels []*dto.LabelPair, value float64) *dto.Metric {
	return &dto.Metric{
		Label: labels,
		Gauge: &dto.Gauge{Value: proto.Float64(value)},
	}
}

func teamLabels(team string) []*dto.LabelPair {
	return []*dto.LabelPair{{
		Name:  proto.String("team"),
		Value: proto.String(team),
	}}
}
