// Command pipeline wires the eleven pipeline services and five historical
// recorders into the dataflow graph and drives them from the four external feed files, in
// series: prices, market data, trades, inquiries. A single synchronous
// run replaces any WAL recording, replay, or config-hot-reload mode
// (see DESIGN.md).
package main

import (
	"flag"
	"log"
	"os"

	"github.com/grafana/pyroscope-go"

	"treasury-pipeline/internal/algoexecution"
	"treasury-pipeline/internal/algostreaming"
	"treasury-pipeline/internal/execution"
	"treasury-pipeline/internal/feed"
	"treasury-pipeline/internal/gui"
	"treasury-pipeline/internal/hist"
	"treasury-pipeline/internal/inquiry"
	"treasury-pipeline/internal/marketdata"
	"treasury-pipeline/internal/obs"
	"treasury-pipeline/internal/ops"
	"treasury-pipeline/internal/position"
	"treasury-pipeline/internal/pricing"
	"treasury-pipeline/internal/risk"
	"treasury-pipeline/internal/streaming"
	"treasury-pipeline/internal/telemetry"
	"treasury-pipeline/internal/tradebooking"
)

func main() {
	configPath := flag.String("config", "", "path to JSON run config")
	profile := flag.Bool("profile", false, "enable continuous profiling via pyroscope")
	profileServer := flag.String("profile-server", "http://localhost:4040", "pyroscope server address")
	flag.Parse()

	if *profile {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "treasury-pipeline",
			ServerAddress:   *profileServer,
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocObjects,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseObjects,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer func() { _ = profiler.Stop() }()
	}

	loaded, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := run(loaded); err != nil {
		telemetry.Fatal(err)
		log.Fatalf("run failed: %v", err)
	}
}

func run(loaded ops.Loaded) error {
	metrics := obs.NewMetrics()
	traceGen := obs.NewTraceGenerator(1)

	guiFile, err := os.Create(loaded.Output.GUI)
	if err != nil {
		return err
	}
	defer guiFile.Close()
	positionsFile, err := os.Create(loaded.Output.Positions)
	if err != nil {
		return err
	}
	defer positionsFile.Close()
	riskFile, err := os.Create(loaded.Output.Risk)
	if err != nil {
		return err
	}
	defer riskFile.Close()
	streamingFile, err := os.Create(loaded.Output.Streaming)
	if err != nil {
		return err
	}
	defer streamingFile.Close()
	executionsFile, err := os.Create(loaded.Output.Executions)
	if err != nil {
		return err
	}
	defer executionsFile.Close()
	inquiriesFile, err := os.Create(loaded.Output.AggregatedInquiries)
	if err != nil {
		return err
	}
	defer inquiriesFile.Close()

	pricingSvc := pricing.New()
	marketdataSvc := marketdata.New()
	algostreamingSvc := algostreaming.New()
	streamingSvc := streaming.New()
	algoexecutionSvc := algoexecution.New(1)
	executionSvc := execution.New()
	tradebookingSvc := tradebooking.New()
	positionSvc := position.New()
	riskSvc := risk.New()
	inquirySvc := inquiry.New()
	guiSvc := gui.New(guiFile)

	histPosition := hist.NewPositionRecorder(positionsFile)
	histRisk := hist.NewRiskRecorder(riskFile)
	histStreaming := hist.NewStreamingRecorder(streamingFile)
	histExecution := hist.NewExecutionRecorder(executionsFile)
	histInquiry := hist.NewInquiryRecorder(inquiriesFile)

	pricingSvc.AddListener(algostreamingSvc)
	pricingSvc.AddListener(guiSvc)

	algostreamingSvc.AddListener(streamingSvc)
	streamingSvc.AddListener(histStreaming)

	marketdataSvc.AddListener(algoexecutionSvc)

	algoexecutionSvc.AddListener(executionSvc)
	executionSvc.AddListener(histExecution)
	executionSvc.AddListener(tradebookingSvc)

	tradebookingSvc.AddListener(positionSvc)

	positionSvc.AddListener(riskSvc)
	positionSvc.AddListener(histPosition)

	riskSvc.AddListener(histRisk)

	inquirySvc.AddListener(histInquiry)

	if err := runQuotes(loaded.Input.Prices, pricingSvc, metrics, traceGen); err != nil {
		return err
	}
	if err := runDepth(loaded.Input.MarketData, marketdataSvc, metrics, traceGen); err != nil {
		return err
	}
	if err := runTrades(loaded.Input.Trades, tradebookingSvc, metrics, traceGen); err != nil {
		return err
	}
	if err := runInquiries(loaded.Input.Inquiries, inquirySvc, metrics, traceGen); err != nil {
		return err
	}

	snapshot := metrics.Snapshot()
	telemetry.Infof("pipeline run complete: stages=%v sink_write_fails=%d", snapshot.StageCounts, snapshot.SinkWriteFails)
	return nil
}

func runQuotes(path string, svc *pricing.Service, metrics *obs.Metrics, traceGen *obs.TraceGenerator) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	quotes, err := feed.DecodeQuotes(f)
	if err != nil {
		return err
	}
	for _, q := range quotes {
		metrics.Observe(obs.StageQuoteIngested)
		telemetry.Infof("trace=%d stage=quote product=%s", traceGen.Next(), q.Product.Identifier)
		svc.OnMessage(q)
	}
	return nil
}

func runDepth(path string, svc *marketdata.Service, metrics *obs.Metrics, traceGen *obs.TraceGenerator) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	snapshots, err := feed.DecodeDepthSnapshots(f)
	if err != nil {
		return err
	}
	for _, snap := range snapshots {
		metrics.Observe(obs.StageDepthIngested)
		telemetry.Infof("trace=%d stage=depth product=%s", traceGen.Next(), snap.Product.Identifier)
		svc.OnMessage(snap)
	}
	return nil
}

func runTrades(path string, svc *tradebooking.Service, metrics *obs.Metrics, traceGen *obs.TraceGenerator) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	trades, err := feed.DecodeTrades(f)
	if err != nil {
		return err
	}
	for _, t := range trades {
		metrics.Observe(obs.StageTradeIngested)
		telemetry.Infof("trace=%d stage=trade id=%s", traceGen.Next(), t.TradeID)
		svc.OnMessage(t)
	}
	return nil
}

func runInquiries(path string, svc *inquiry.Service, metrics *obs.Metrics, traceGen *obs.TraceGenerator) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	inquiries, err := feed.DecodeInquiries(f)
	if err != nil {
		return err
	}
	for _, inq := range inquiries {
		metrics.Observe(obs.StageInquiryIngested)
		telemetry.Infof("trace=%d stage=inquiry id=%s", traceGen.Next(), inq.InquiryID)
		svc.OnMessage(inq)
	}
	return nil
}
