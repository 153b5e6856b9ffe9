package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"

	"github.com/pithecene-io/rangemap/almanac"
	"github.com/pithecene-io/rangemap/cli/reader"
	"github.com/pithecene-io/rangemap/interval"
	"github.com/pithecene-io/rangemap/iox"
	"github.com/pithecene-io/rangemap/log"
	"github.com/pithecene-io/rangemap/metrics"
	"github.com/pithecene-io/rangemap/remap"
	"github.com/pithecene-io/rangemap/types"
)

// session is a loaded almanac ready to run.
type session struct {
	settings  *settings
	meta      *types.RunMeta
	logger    *log.Logger
	almanac   *almanac.Almanac
	pipeline  *remap.Pipeline
	seeds     []interval.Interval
	collector *metrics.Collector
}

// openSession resolves settings, loads the almanac, and builds the pipeline.
// Returned errors carry exit codes. Callers close the session when done.
func openSession(c *cli.Context, positional string) (_ *session, err error) {
	s, err := resolveSettings(c, positional)
	if err != nil {
		return nil, err
	}

	meta := types.NewRunMeta(s.input)
	if s.runID != "" {
		meta.RunID = s.runID
		if err := meta.Validate(); err != nil {
			return nil, cli.Exit(err.Error(), exitInvalidInput)
		}
	}
	logger := log.NewLogger(meta, s.logLevel).WithOutput(c.App.ErrWriter)
	collector := metrics.NewCollector(string(s.seeds), s.coalesce, meta.RunID)
	collector.IncRunStarted()

	sess := &session{
		settings:  s,
		meta:      meta,
		logger:    logger,
		collector: collector,
	}
	defer func() {
		if err != nil {
			sess.close()
		}
	}()

	a, err := reader.GetReader().Load(s.input, s.inputFormat)
	if err != nil {
		return nil, sess.fail("load almanac", err)
	}
	sess.almanac = a

	p, err := a.Pipeline()
	if err != nil {
		return nil, sess.fail("build pipeline", err)
	}
	if verr := p.Validate(); verr != nil {
		if s.strict {
			return nil, sess.fail("validate pipeline", verr)
		}
		logger.Warn("pipeline is not strictly valid", map[string]any{"error": verr.Error()})
	}
	sess.pipeline = p

	seeds, err := a.Intervals(s.seeds)
	if err != nil {
		return nil, sess.fail("read seeds", err)
	}
	sess.seeds = seeds
	collector.RecordInitial(len(seeds))

	fields := s.describe()
	fields["stages"] = p.Len()
	fields["rules"] = a.RuleCount()
	fields["seed_intervals"] = len(seeds)
	logger.Debug("almanac loaded", fields)

	return sess, nil
}

// close flushes the logger.
func (s *session) close() {
	iox.DiscardErr(s.logger.Sync)
}

// fail logs err, counts the failed run, and returns it as a cli exit error.
func (s *session) fail(step string, err error) error {
	s.collector.IncRunFailed()
	s.logger.Error(step+" failed", map[string]any{"error": err.Error()})
	return failure(fmt.Errorf("%s: %w", step, err))
}

// run executes the pipeline. The observer records every stage into the
// collector and the debug log; reports are returned in stage order.
func (s *session) run() ([]interval.Interval, []remap.StageReport) {
	var reports []remap.StageReport
	final := remap.RunWith(s.seeds, s.pipeline, remap.RunOptions{
		Coalesce: s.settings.coalesce,
		Observer: func(report remap.StageReport, _ []interval.Interval) {
			reports = append(reports, report)
			s.collector.RecordStage(report.Stage.String(), report.IntervalsIn, report.IntervalsOut)
			if !s.logger.Enabled(zapcore.DebugLevel) {
				return
			}
			s.logger.Debug("stage applied", map[string]any{
				"stage":         report.Stage.String(),
				"intervals_in":  report.IntervalsIn,
				"intervals_out": report.IntervalsOut,
				"values":        report.Values,
			})
		},
	})
	s.collector.RecordFinal(len(final), interval.TotalLen(final))
	return final, reports
}

// finish reduces the final generation and logs the outcome.
func (s *session) finish(final []interval.Interval) (int64, error) {
	m, err := remap.MinStart(final)
	if err != nil {
		return 0, s.fail("reduce result", err)
	}
	s.collector.IncRunCompleted()
	s.logger.Info("pipeline finished", map[string]any{
		"min_start": m,
		"intervals": len(final),
	})
	return m, nil
}
