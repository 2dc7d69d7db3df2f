package kpi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics: KPI snapshot'ını Prometheus gauge'larına yansıtır.
// StatusChanged sinyali ve liste yenilemeleri Update'i tetikler.
type Metrics struct {
	total        prometheus.Gauge
	todayCount   prometheus.Gauge
	passRate     prometheus.Gauge
	issueCount   prometheus.Gauge
	averageScore prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qms_inspections_total",
			Help: "Toplam denetim kaydı sayısı",
		}),
		todayCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qms_inspections_today",
			Help: "Bugün yapılan denetim sayısı",
		}),
		passRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qms_pass_rate_percent",
			Help: "Onaylı ve yüksek puanlı kayıt yüzdesi",
		}),
		issueCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qms_issue_count",
			Help: "Ortalama puanı 7'nin altındaki kayıt sayısı",
		}),
		averageScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "qms_average_score",
			Help: "Tüm kayıtların ortalama puanı",
		}),
	}
	reg.MustRegister(m.total, m.todayCount, m.passRate, m.issueCount, m.averageScore)
	return m
}

// Update: Gauge'ları snapshot değerlerine çeker
func (m *Metrics) Update(s Snapshot) {
	m.total.Set(float64(s.TotalCount))
	m.todayCount.Set(float64(s.TodayCount))
	m.passRate.Set(float64(s.PassRate))
	m.issueCount.Set(float64(s.IssueCount))
	m.averageScore.Set(s.AverageScore)
}
