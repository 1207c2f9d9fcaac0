package metrics

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"sortbench/kvdb"
)

const namespace = "sortbench"

// Recorder 는 벤치마크 결과를 전용 레지스트리의 게이지/카운터로 모은다.
// 결과는 node_exporter textfile collector 가 읽을 수 있는 파일로 내보낸다.
type Recorder struct {
	registry         *prometheus.Registry
	nsPerElement     *prometheus.GaugeVec
	nsPerElementLog2 *prometheus.GaugeVec
	elementsSorted   *prometheus.CounterVec
}

func NewRecorder(label string) *Recorder {
	constLabels := prometheus.Labels{"label": label}
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		nsPerElement: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "ns_per_element",
			Help:        "Nanoseconds spent per sorted element.",
			ConstLabels: constLabels,
		}, []string{"algorithm", "size"}),
		nsPerElementLog2: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "ns_per_element_log2",
			Help:        "Nanoseconds per element divided by log2(size).",
			ConstLabels: constLabels,
		}, []string{"algorithm", "size"}),
		elementsSorted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "elements_sorted_total",
			Help:        "Elements sorted inside timed regions.",
			ConstLabels: constLabels,
		}, []string{"algorithm"}),
	}
	r.registry.MustRegister(r.nsPerElement, r.nsPerElementLog2, r.elementsSorted)
	return r
}

func (r *Recorder) Observe(res kvdb.BenchmarkResult) {
	size := strconv.Itoa(res.Size)
	r.nsPerElement.WithLabelValues(res.Algorithm, size).Set(res.NsPerElement)
	r.nsPerElementLog2.WithLabelValues(res.Algorithm, size).Set(res.NsPerElementLog2)
	r.elementsSorted.WithLabelValues(res.Algorithm).Add(float64(res.Elements))
}

func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile 은 path 에 텍스트 포맷으로 원자적으로 쓴다.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return errors.Wrapf(err, "write metrics %s", path)
	}
	return nil
}
